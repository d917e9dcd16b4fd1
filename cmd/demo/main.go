// Command demo runs the lobby, unlock and movement systems headless and
// prints what they do.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dashrun/components"
	"github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/armory"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/shared/movement"
	"github.com/automoto/dashrun/sim"
	"github.com/automoto/dashrun/systems"
)

func main() {
	configPath := flag.String("config", "", "YAML config override file")
	frames := flag.Int("frames", 0, "Frames to simulate (0 = simulation.demo_frames)")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	flag.Parse()

	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		f.Apply()
		log.Printf("Loaded config overrides from %s", *configPath)
	}
	if *frames <= 0 {
		*frames = config.Simulation.DemoFrames
	}

	printLobby()
	printUnlocks()

	if err := runMovement(*frames, *realtime); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}
}

func printLobby() {
	lobby := &components.LobbyData{}
	systems.InitLobby(lobby, config.Lobby.MinPlayers, config.Lobby.MaxPlayers)
	systems.JoinLobby(lobby, 1, "Alice")
	systems.JoinLobby(lobby, 2, "Bob")
	systems.SetReady(lobby, 1, true)
	systems.SetReady(lobby, 2, true)

	for _, line := range systems.LobbyStatus(lobby) {
		fmt.Println(line)
	}
	if id, ok := systems.StartMatch(lobby); ok {
		fmt.Printf("Match id: %s\n", id)
	} else {
		fmt.Println(systems.LobbyValidationMessage(lobby))
	}
}

func printUnlocks() {
	catalog := armory.DefaultCatalog()
	alice := armory.NewProfile()
	alice.Kills = 760

	fmt.Printf("\n=== Unlocks for Alice (%d kills) ===\n", alice.Kills)
	unlocks := catalog.UnlocksForKills(alice.Kills)
	fmt.Printf("Unlocked item count: %d\n", len(unlocks))
	for _, u := range unlocks[:min(len(unlocks), 8)] {
		fmt.Printf("  * %s\n", u)
	}

	fmt.Printf("\nCan Alice use AK-47? %s\n", yesNo(catalog.CanUse("AK-47", alice.Kills)))
	fmt.Printf("Can Alice use Bait Bot? %s\n", yesNo(catalog.CanUse("Bait Bot", alice.Kills)))

	armory.ApplyUtility("Marksman's Arm", &alice)
	fmt.Printf("\nAfter Marksman's Arm -> maxHealth: %.2f, spreadMultiplier: %.2f\n",
		alice.MaxHealth, alice.BulletSpreadMultiplier)
}

func runMovement(frames int, realtime bool) error {
	loop, err := sim.NewLoop(
		movement.NewWithTuning(gamemath.Zero, systems.TuningFromConfig()),
		sim.DemoScript,
		config.Simulation.TickRate,
	)
	if err != nil {
		return err
	}

	every := max(config.Simulation.ReportEvery, 1)
	fmt.Println()
	loop.OnFrame(func(f sim.Frame) {
		if f.Index%every == 0 {
			fmt.Println(f)
		}
	})

	if !realtime {
		loop.Step(frames)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return loop.Run(ctx, frames)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
