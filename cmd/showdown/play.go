package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/bot"
	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/internal/phh"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

// PlayCmd plays hands at one table and logs each of them.
type PlayCmd struct {
	Config     string `short:"c" default:"showdown.hcl" help:"HCL config file (defaults are used when missing)"`
	Hands      int    `help:"Hands to play (overrides config)"`
	Seed       int64  `help:"RNG seed, 0 for random (overrides config)"`
	SmallBlind int    `help:"Small blind (overrides config)"`
	BigBlind   int    `help:"Big blind (overrides config)"`
	PHHDir     string `name:"phh-dir" help:"Write every hand as a PHH file into this directory"`
	TableName  string `name:"table" default:"showdown" help:"Table name recorded in hand histories"`
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	logger := globals.logger()

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Table.Seed)
	logger.Info("Starting table", "players", len(cfg.Players), "hands", cfg.Table.Hands,
		"blinds", fmt.Sprintf("%d/%d", cfg.Table.SmallBlind, cfg.Table.BigBlind), "seed", seed)

	table, err := newTable(cfg, seed, logger, cmd.PHHDir, cmd.TableName)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ showdown ♦ ♣ "))
	records, err := table.PlayHands(cfg.Table.Hands)
	if err != nil {
		return fmt.Errorf("after %d hands: %w", len(records), err)
	}
	printStandings(os.Stdout, cfg, table, len(records))
	return nil
}

// apply copies explicit flag values over the file's settings.
func (cmd *PlayCmd) apply(cfg *config.Config) {
	if cmd.Hands > 0 {
		cfg.Table.Hands = cmd.Hands
	}
	if cmd.Seed != 0 {
		cfg.Table.Seed = cmd.Seed
	}
	if cmd.SmallBlind > 0 {
		cfg.Table.SmallBlind = cmd.SmallBlind
	}
	if cmd.BigBlind > 0 {
		cfg.Table.BigBlind = cmd.BigBlind
	}
}

func newTable(cfg *config.Config, seed int64, logger *log.Logger, phhDir, name string) (*game.Table, error) {
	rng := randutil.New(seed)

	events := game.NewEventBus()
	events.Subscribe(handLogger(logger))
	if phhDir != "" {
		events.Subscribe(phhWriter(logger, phhDir, name))
	}

	table := game.NewTable(game.TableConfig{
		SmallBlind: cfg.Table.SmallBlind,
		BigBlind:   cfg.Table.BigBlind,
		Logger:     logger,
		Events:     events,
	}, func() game.CardSource {
		return poker.NewDeck(rng)
	})

	for i, p := range cfg.Players {
		decider, err := bot.New(p.Strategy, randutil.Stream(seed, i), logger.With("player", p.Name))
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}
		table.AddPlayer(p.Name, p.Stack, decider)
	}
	return table, nil
}

// handLogger logs a one-line summary of every finished hand.
func handLogger(logger *log.Logger) game.EventSubscriber {
	return game.EventSubscriberFunc(func(e game.Event) {
		finished, ok := e.(game.HandFinishedEvent)
		if !ok {
			return
		}
		r := finished.Record
		var winners []string
		for _, id := range r.Winners() {
			p, _ := r.Player(id)
			winners = append(winners, fmt.Sprintf("%s +%d", p.Name, r.Settlement.Awards[id]))
		}
		logger.Info("Hand finished",
			"hand", r.Number,
			"pot", r.Pot(),
			"board", poker.FormatCards(r.Board),
			"winners", strings.Join(winners, ", "),
			"showdown", r.Settlement.Showdown,
			"side_pots", r.SidePots(),
		)
		if r.ForcedFolds > 0 {
			logger.Warn("Illegal actions folded", "hand", r.Number, "count", r.ForcedFolds)
		}
	})
}

// phhWriter exports every finished hand to dir.
func phhWriter(logger *log.Logger, dir, table string) game.EventSubscriber {
	return game.EventSubscriberFunc(func(e game.Event) {
		finished, ok := e.(game.HandFinishedEvent)
		if !ok {
			return
		}
		path, err := phh.WriteFile(dir, phh.FromRecord(finished.Record, table))
		if err != nil {
			logger.Error("Failed to write hand history", "hand", finished.Record.ID, "err", err)
			return
		}
		logger.Debug("Hand history written", "path", path)
	})
}

func printStandings(w io.Writer, cfg *config.Config, table *game.Table, hands int) {
	stacks := make(map[string]int, len(cfg.Players))
	for _, p := range table.Players() {
		stacks[p.Name] = p.Chips
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Standings after %d hands", hands)))
	for _, p := range cfg.Players {
		chips := stacks[p.Name]
		net := chips - p.Stack
		line := fmt.Sprintf("%-12s %-8s %8d  %+d", p.Name, p.Strategy, chips, net)
		if chips == 0 {
			line += "  (eliminated)"
		}
		fmt.Fprintln(w, renderNet(line, float64(net)))
	}
}
