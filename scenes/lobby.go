package scenes

import (
	"log"
	"sync"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/systems"
	"github.com/automoto/dashrun/systems/factory"
	"github.com/automoto/dashrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LobbyScene displays the roster and ready states using ebitenui
type LobbyScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	lobbyUI      *ui.LobbyUI
	lobbyData    *components.LobbyData
	roster       []components.LobbyPlayer
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
}

// NewLobbyScene creates a lobby seeded with roster. Seeded players start
// not ready.
func NewLobbyScene(sc SceneChanger, roster []components.LobbyPlayer) *LobbyScene {
	return &LobbyScene{sceneChanger: sc, roster: roster}
}

func (ls *LobbyScene) Update() {
	ls.once.Do(ls.configure)

	ls.lobbyUI.Update()

	if ls.shouldStart {
		ls.startMatch()
		return
	}
	if ls.shouldQuit {
		ls.sceneChanger.Quit()
	}
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.ArenaBg)

	if ls.ecs == nil {
		return
	}
	ls.lobbyUI.UI.Draw(screen)
}

func (ls *LobbyScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	ls.lobbyData = components.Lobby.Get(factory.CreateLobby(ls.ecs))
	for _, p := range ls.roster {
		systems.JoinLobby(ls.lobbyData, p.ID, p.Name)
	}

	ls.lobbyUI = ui.NewLobbyUI(
		ls.lobbyData,
		func() { ls.shouldStart = true },
		func() { ls.shouldQuit = true },
	)
}

func (ls *LobbyScene) startMatch() {
	ls.shouldStart = false
	matchID, ok := systems.StartMatch(ls.lobbyData)
	if !ok {
		return
	}

	for _, line := range systems.LobbyStatus(ls.lobbyData) {
		log.Println(line)
	}
	log.Printf("Starting match %s", matchID)

	ls.sceneChanger.ChangeScene(NewArenaScene(ls.sceneChanger, ls.lobbyData))
}
