package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/simulator"
)

// SimulateCmd runs many independent tables and reports per-strategy results.
type SimulateCmd struct {
	Config  string `short:"c" default:"showdown.hcl" help:"HCL config file (defaults are used when missing)"`
	Tables  int    `help:"Tables to run (overrides config)"`
	Workers int    `help:"Tables played concurrently (overrides config)"`
	Hands   int    `help:"Hands per table (overrides config)"`
	Seed    int64  `help:"RNG seed, 0 for random (overrides config)"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	logger := globals.logger()

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simCfg := simulatorConfig(cfg)
	simCfg.Logger = logger
	logger.Info("Starting simulation", "tables", simCfg.Tables, "workers", simCfg.Workers,
		"hands_per_table", simCfg.Hands, "seed", simCfg.Seed)

	report, err := simulator.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	printReport(os.Stdout, report)
	if report.ConservationFailures > 0 {
		return fmt.Errorf("%d tables failed chip conservation", report.ConservationFailures)
	}
	return nil
}

func (cmd *SimulateCmd) apply(cfg *config.Config) {
	if cmd.Tables > 0 {
		cfg.Simulation.Tables = cmd.Tables
	}
	if cmd.Workers > 0 {
		cfg.Simulation.Workers = cmd.Workers
	}
	if cmd.Hands > 0 {
		cfg.Table.Hands = cmd.Hands
	}
	if cmd.Seed != 0 {
		cfg.Table.Seed = cmd.Seed
	}
}

func simulatorConfig(cfg *config.Config) simulator.Config {
	seats := make([]simulator.Seat, len(cfg.Players))
	for i, p := range cfg.Players {
		seats[i] = simulator.Seat{Name: p.Name, Strategy: p.Strategy, Stack: p.Stack}
	}
	return simulator.Config{
		Tables:     cfg.Simulation.Tables,
		Workers:    cfg.Simulation.Workers,
		Hands:      cfg.Table.Hands,
		SmallBlind: cfg.Table.SmallBlind,
		BigBlind:   cfg.Table.BigBlind,
		Seed:       randutil.Seed(cfg.Table.Seed),
		Seats:      seats,
	}
}

func printReport(w io.Writer, r *simulator.Report) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Simulation: %d hands on %d tables in %s (seed %d)",
		r.Hands, r.Tables, r.Elapsed.Round(time.Millisecond), r.Seed)))
	fmt.Fprintf(w, "showdowns %d  fold wins %d  side pots %d  split pots %d  eliminations %d  forced folds %d\n\n",
		r.Showdowns, r.FoldWins, r.SidePots, r.SplitPots, r.Eliminations, r.ForcedFolds)

	names := make([]string, 0, len(r.Strategies))
	for name := range r.Strategies {
		names = append(names, name)
	}
	slices.Sort(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\thands\tbb/100\t95% CI\tshowdown bb\tnon-showdown bb")
	for _, name := range names {
		s := r.Strategies[name]
		lo, hi := s.ConfidenceInterval95()
		fmt.Fprintf(tw, "%s\t%d\t%s\t[%.1f, %.1f]\t%.1f\t%.1f\n",
			name, s.Hands, renderNet(fmt.Sprintf("%+.1f", s.BBPer100()), s.Mean()),
			lo*100, hi*100, s.ShowdownBB, s.NonShowdownBB)
	}
	_ = tw.Flush()
}
