package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Players, 6)
	assert.Equal(t, 200, cfg.Players[0].Stack)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "table.hcl")
	src := `
table {
  small_blind    = 5
  big_blind      = 10
  starting_stack = 500
  hands          = 250
  seed           = 42
}

simulation {
  tables  = 16
  workers = 8
}

player "alice" {
  strategy = "random"
  stack    = 150
}

player "bob" {
  strategy = "shove"
}

player "carol" {}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, TableSettings{SmallBlind: 5, BigBlind: 10, StartingStack: 500, Hands: 250, Seed: 42}, *cfg.Table)
	assert.Equal(t, SimulationSettings{Tables: 16, Workers: 8}, *cfg.Simulation)
	assert.Equal(t, []PlayerConfig{
		{Name: "alice", Strategy: "random", Stack: 150},
		{Name: "bob", Strategy: "shove", Stack: 500},
		{Name: "carol", Strategy: "call", Stack: 500},
	}, cfg.Players)
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`table { small_blind = 2 }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Table.BigBlind)
	assert.Equal(t, 400, cfg.Table.StartingStack)
	assert.Equal(t, 100, cfg.Table.Hands)
	assert.Len(t, cfg.Players, 6)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte(`table { small_blind = "lots" }`), "typed.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative small blind", func(c *Config) { c.Table.SmallBlind = -1 }, "small_blind must be positive"},
		{"big below small", func(c *Config) { c.Table.BigBlind = 0 }, "is below small_blind"},
		{"one player", func(c *Config) { c.Players = c.Players[:1] }, "need 2 to 22 players"},
		{"too many players", func(c *Config) {
			for len(c.Players) <= MaxPlayers {
				c.Players = append(c.Players, PlayerConfig{Name: "extra" + string(rune('a'+len(c.Players))), Strategy: "call", Stack: 10})
			}
		}, "need 2 to 22 players"},
		{"unknown strategy", func(c *Config) { c.Players[0].Strategy = "psychic" }, "unknown strategy"},
		{"empty stack", func(c *Config) { c.Players[1].Stack = 0 }, "stack must be positive"},
		{"duplicate name", func(c *Config) { c.Players[1].Name = c.Players[0].Name }, "declared twice"},
		{"no workers", func(c *Config) { c.Simulation.Workers = 0 }, "workers must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
