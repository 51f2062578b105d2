// Package config loads table and simulation settings from HCL.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/internal/bot"
)

// MaxPlayers is the most players one 52 card deck can serve: two hole
// cards each plus a five card board.
const MaxPlayers = 22

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete file.
type Config struct {
	Table      *TableSettings      `hcl:"table,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// TableSettings are the stakes and length of play.
type TableSettings struct {
	SmallBlind    int   `hcl:"small_blind,optional"`
	BigBlind      int   `hcl:"big_blind,optional"`
	StartingStack int   `hcl:"starting_stack,optional"`
	Hands         int   `hcl:"hands,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// SimulationSettings control how many tables the simulator runs.
type SimulationSettings struct {
	Tables  int `hcl:"tables,optional"`
	Workers int `hcl:"workers,optional"`
}

// PlayerConfig seats one player.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Stack    int    `hcl:"stack,optional"`
}

// Default returns a six-handed table of mixed bots.
func Default() *Config {
	cfg := &Config{}
	for i, strategy := range []string{bot.StrategyRandom, bot.StrategyCall, bot.StrategyChart, bot.StrategyRandom, bot.StrategyShove, bot.StrategyChart} {
		cfg.Players = append(cfg.Players, PlayerConfig{
			Name:     fmt.Sprintf("bot%d", i+1),
			Strategy: strategy,
		})
	}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads an HCL file. A missing file yields Default().
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(cfg.Players) == 0 {
		cfg.Players = Default().Players
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = 1
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = c.Table.SmallBlind * 2
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = c.Table.BigBlind * 100
	}
	if c.Table.Hands == 0 {
		c.Table.Hands = 100
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Tables == 0 {
		c.Simulation.Tables = 1
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 4
	}

	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = bot.StrategyCall
		}
		if c.Players[i].Stack == 0 {
			c.Players[i].Stack = c.Table.StartingStack
		}
	}
}

// Validate checks the settings can run a game.
func (c *Config) Validate() error {
	var errs []error
	if c.Table.SmallBlind <= 0 {
		errs = append(errs, fmt.Errorf("small_blind must be positive, got %d", c.Table.SmallBlind))
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		errs = append(errs, fmt.Errorf("big_blind %d is below small_blind %d", c.Table.BigBlind, c.Table.SmallBlind))
	}
	if c.Table.Hands < 0 {
		errs = append(errs, fmt.Errorf("hands must not be negative, got %d", c.Table.Hands))
	}
	if c.Simulation.Tables <= 0 || c.Simulation.Workers <= 0 {
		errs = append(errs, errors.New("simulation tables and workers must be positive"))
	}
	if n := len(c.Players); n < 2 || n > MaxPlayers {
		errs = append(errs, fmt.Errorf("need 2 to %d players, got %d", MaxPlayers, n))
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("player %q declared twice", p.Name))
		}
		seen[p.Name] = true
		if !bot.Known(p.Strategy) {
			errs = append(errs, fmt.Errorf("player %q: unknown strategy %q", p.Name, p.Strategy))
		}
		if p.Stack <= 0 {
			errs = append(errs, fmt.Errorf("player %q: stack must be positive, got %d", p.Name, p.Stack))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
