package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/dashrun/components"
	"github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/fonts"
	"github.com/automoto/dashrun/scenes"
	"github.com/automoto/dashrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipLobby {
		g.scene = scenes.NewArenaScene(g, quickMatchLobby())
	} else {
		g.scene = scenes.NewLobbyScene(g, nil)
	}

	return g
}

// quickMatchLobby fills the lobby to its minimum size with ready players
func quickMatchLobby() *components.LobbyData {
	lobby := &components.LobbyData{}
	systems.InitLobby(lobby, config.Lobby.MinPlayers, config.Lobby.MaxPlayers)
	for id := 1; id <= max(config.Lobby.MinPlayers, 1); id++ {
		systems.JoinLobby(lobby, id, fmt.Sprintf("Player %d", id))
		systems.SetReady(lobby, id, true)
	}
	return lobby
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.TuningFile, "config", "", "YAML config override file, hot reloaded while in the arena")
	flag.BoolVar(&config.Debug.SkipLobby, "skip-lobby", false, "Skip the lobby and start a match with the minimum number of players")
	flag.BoolVar(&config.Debug.ShowVectors, "debug", false, "Draw velocity and input direction lines")
	flag.Parse()

	if path := config.Debug.TuningFile; path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		f.Apply()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("dashrun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Simulation.TickRate)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
