// Package simulator plays many independent bot tables in parallel and
// aggregates what happened at them.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/bot"
	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/statistics"
	"github.com/lox/showdown/poker"
)

// Seat describes one player at every simulated table.
type Seat struct {
	Name     string
	Strategy string
	Stack    int
}

// Config holds configuration for running simulations.
type Config struct {
	Tables     int
	Workers    int
	Hands      int // per table
	SmallBlind int
	BigBlind   int
	Seed       int64
	Seats      []Seat
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Report totals the outcome of every table.
type Report struct {
	Seed                 int64
	Tables               int
	Hands                int
	Showdowns            int
	FoldWins             int
	SidePots             int
	SplitPots            int
	ForcedFolds          int
	Eliminations         int
	ConservationFailures int
	Strategies           map[string]*statistics.Statistics
	Elapsed              time.Duration
}

func newReport() *Report {
	return &Report{Strategies: make(map[string]*statistics.Statistics)}
}

func (r *Report) strategy(name string) *statistics.Statistics {
	s, ok := r.Strategies[name]
	if !ok {
		s = &statistics.Statistics{}
		r.Strategies[name] = s
	}
	return s
}

// add folds a single hand into the report.
func (r *Report) add(record *game.HandRecord, strategies map[game.PlayerID]string) {
	r.Hands++
	r.ForcedFolds += record.ForcedFolds
	r.Eliminations += len(record.Busted())
	if record.Settlement.Showdown {
		r.Showdowns++
	} else {
		r.FoldWins++
	}
	if record.SidePots() {
		r.SidePots++
	}
	if record.SplitPot() {
		r.SplitPots++
	}

	bb := float64(record.BigBlind)
	pot := float64(record.Pot()) / bb
	for _, p := range record.Players {
		r.strategy(strategies[p.ID]).Add(statistics.HandResult{
			NetBB:    float64(p.Net()) / bb,
			Showdown: record.Settlement.Showdown && p.State != game.Folded,
			PotBB:    pot,
		})
	}
}

func (r *Report) merge(other *Report) {
	r.Tables += other.Tables
	r.Hands += other.Hands
	r.Showdowns += other.Showdowns
	r.FoldWins += other.FoldWins
	r.SidePots += other.SidePots
	r.SplitPots += other.SplitPots
	r.ForcedFolds += other.ForcedFolds
	r.Eliminations += other.Eliminations
	r.ConservationFailures += other.ConservationFailures
	for name, s := range other.Strategies {
		r.strategy(name).Merge(s)
	}
}

// Run plays cfg.Tables tables of up to cfg.Hands hands each, at most
// cfg.Workers at a time. Every table draws from its own stream of cfg.Seed,
// so a report is reproducible for a given seed regardless of scheduling.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Tables <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("tables and workers must be positive, got %d and %d", cfg.Tables, cfg.Workers)
	}
	if len(cfg.Seats) < 2 {
		return nil, fmt.Errorf("%w: %d seats configured", game.ErrNotEnoughPlayers, len(cfg.Seats))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	start := cfg.Clock.Now()
	results := make([]*Report, cfg.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Tables {
		g.Go(func() error {
			report, err := runTable(ctx, cfg, i)
			results[i] = report
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newReport()
	total.Seed = cfg.Seed
	for _, r := range results {
		total.merge(r)
	}
	total.Elapsed = cfg.Clock.Since(start)

	for name, s := range total.Strategies {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("statistics for %s: %w", name, err)
		}
	}
	return total, nil
}

func runTable(ctx context.Context, cfg Config, index int) (*Report, error) {
	rng := randutil.Stream(cfg.Seed, index)
	logger := cfg.Logger.With("table", index+1)

	table := game.NewTable(game.TableConfig{
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		Logger:     logger,
		Clock:      cfg.Clock,
	}, func() game.CardSource {
		return poker.NewDeck(rng)
	})

	strategies := make(map[game.PlayerID]string, len(cfg.Seats))
	for _, seat := range cfg.Seats {
		botRng := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		decider, err := bot.New(seat.Strategy, botRng, logger.With("player", seat.Name))
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", index+1, err)
		}
		p := table.AddPlayer(seat.Name, seat.Stack, decider)
		strategies[p.ID] = seat.Strategy
	}

	report := newReport()
	report.Tables = 1
	for report.Hands < cfg.Hands && len(table.Players()) >= 2 {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		record, err := table.PlayHand()
		if errors.Is(err, game.ErrChipConservation) {
			report.ConservationFailures++
			logger.Error("Stopping table", "hands", report.Hands, "err", err)
			break
		}
		if err != nil {
			return report, fmt.Errorf("table %d: %w", index+1, err)
		}
		report.add(record, strategies)
	}

	logger.Debug("Table finished", "hands", report.Hands, "players_left", len(table.Players()))
	return report, nil
}
