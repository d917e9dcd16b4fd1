package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	movement, lobby, sim, effects := Movement, Lobby, Simulation, Effects
	t.Cleanup(func() {
		Movement, Lobby, Simulation, Effects = movement, lobby, sim, effects
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, MovementConfig{
		WalkSpeed:    4.5,
		SprintSpeed:  7.0,
		Acceleration: 18.0,
		DashBoost:    10.0,
		DashCooldown: 0.8,
	}, Movement)
	assert.Equal(t, 2, Lobby.MinPlayers)
	assert.Equal(t, 4, Lobby.MaxPlayers)
	assert.InDelta(t, 1.0/60.0, FrameDelta(), 1e-12)
}

func TestParseAppliesOnlyPresentFields(t *testing.T) {
	restoreGlobals(t)

	f, err := Parse([]byte(`
movement:
  sprint_speed: 9.5
  dash_cooldown: 1.2
lobby:
  max_players: 8
simulation:
  tick_rate: 30
`))
	require.NoError(t, err)
	f.Apply()

	assert.Equal(t, 4.5, Movement.WalkSpeed)
	assert.Equal(t, 9.5, Movement.SprintSpeed)
	assert.Equal(t, 1.2, Movement.DashCooldown)
	assert.Equal(t, 2, Lobby.MinPlayers)
	assert.Equal(t, 8, Lobby.MaxPlayers)
	assert.Equal(t, 30, Simulation.TickRate)
	assert.Equal(t, 180, Simulation.DemoFrames)
	assert.InDelta(t, 1.0/30.0, FrameDelta(), 1e-12)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"negative_speed", "movement: {walk_speed: -1}", "movement.walk_speed: must not be negative"},
		{"min_over_max", "lobby: {min_players: 5}", "min_players 5 exceeds max_players 4"},
		{"zero_tick_rate", "simulation: {tick_rate: 0}", "tick_rate must be positive"},
		{"bad_yaml", "movement: [", "unmarshal"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			assert.ErrorContains(t, err, c.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effects: {dash_flash_seconds: 0.5}\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	f.Apply()
	assert.Equal(t, 0.5, Effects.DashFlashSeconds)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement: {}\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("movement: {walk_speed: 5}\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case got := <-w.Events:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}
