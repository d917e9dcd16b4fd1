package scenes

import (
	"log"
	"slices"
	"sync"

	"github.com/automoto/dashrun/archetypes"
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/controls"
	"github.com/automoto/dashrun/systems"
	"github.com/automoto/dashrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the movement playground for every player in the lobby
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	lobby        *components.LobbyData
	watcher      *cfg.Watcher
	once         sync.Once
}

// NewArenaScene creates an arena for lobby's roster. The roster is copied.
func NewArenaScene(sc SceneChanger, lobby *components.LobbyData) *ArenaScene {
	snapshot := *lobby
	snapshot.Players = slices.Clone(lobby.Players)
	return &ArenaScene{sceneChanger: sc, lobby: &snapshot}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.reloadTuning()
	as.ecs.Update()

	if controls.BackPressed(as.ecs.World) {
		as.close()
		as.sceneChanger.ChangeScene(NewLobbyScene(as.sceneChanger, as.lobby.Players))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.ArenaBg)
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(controls.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateDashFlash)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawArena)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPlayers)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateCamera(ecs)
	factory.CreatePlayers(ecs, as.lobby)

	if path := cfg.Debug.TuningFile; path != "" {
		w, err := cfg.NewWatcher(path)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", path, err)
			return
		}
		as.watcher = w
	}
}

// reloadTuning applies the tuning file if it changed since the last frame
func (as *ArenaScene) reloadTuning() {
	if as.watcher == nil {
		return
	}
	select {
	case path, ok := <-as.watcher.Events:
		if !ok {
			as.watcher = nil
			return
		}
		f, err := cfg.LoadFile(path)
		if err != nil {
			log.Printf("Ignoring tuning change: %v", err)
			return
		}
		f.Apply()
		systems.ApplyTuning(as.ecs.World)
		ebiten.SetTPS(cfg.Simulation.TickRate)
		log.Printf("Reloaded tuning from %s", path)
	case err, ok := <-as.watcher.Errors:
		if ok {
			log.Printf("Tuning watcher error: %v", err)
		}
	default:
	}
}

func (as *ArenaScene) close() {
	if as.watcher != nil {
		if err := as.watcher.Close(); err != nil {
			log.Printf("Closing tuning watcher: %v", err)
		}
		as.watcher = nil
	}
}
