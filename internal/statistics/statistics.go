// Package statistics summarises per-hand results in big blinds.
package statistics

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// BigPotBB is the pot size, in big blinds, from which a pot counts as big.
const BigPotBB = 50

// HandResult is one player's outcome in one hand.
type HandResult struct {
	NetBB    float64 // chips won or lost, in big blinds
	Showdown bool    // the player's hand was shown down
	PotBB    float64 // total pot, in big blinds
}

// Statistics accumulates results for one group of players, such as every
// seat driven by the same strategy.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	MaxPotBB  float64
	BigPots   int
	BigPotsBB float64
}

// Add records one hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB
	s.Values = append(s.Values, r.NetBB)

	if r.Showdown {
		s.ShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.NonShowdownWins++
		}
	}

	s.MaxPotBB = max(s.MaxPotBB, r.PotBB)
	if r.PotBB >= BigPotBB {
		s.BigPots++
		s.BigPotsBB += r.NetBB
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.MaxPotBB = max(s.MaxPotBB, other.MaxPotBB)
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

// Mean is the average result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance is the sample variance of the results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError is the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the bounds of the 95% interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean, margin := s.Mean(), 1.96*s.StdError()
	return mean - margin, mean + margin
}

// BBPer100 is the win rate in big blinds per hundred hands.
func (s *Statistics) BBPer100() float64 {
	return s.Mean() * 100
}

func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile interpolates the value at p, between 0 and 1.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	pos := p * float64(len(sorted)-1)
	lower := int(pos)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// Validate checks the internal bookkeeping agrees with itself.
func (s *Statistics) Validate() error {
	var errs []error
	if diff := s.SumBB - s.ShowdownBB - s.NonShowdownBB; math.Abs(diff) > 1e-6 {
		errs = append(errs, fmt.Errorf("ledger mismatch: total %.6f, showdown %.6f, non-showdown %.6f",
			s.SumBB, s.ShowdownBB, s.NonShowdownBB))
	}
	if len(s.Values) != s.Hands {
		errs = append(errs, fmt.Errorf("%d values recorded for %d hands", len(s.Values), s.Hands))
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		errs = append(errs, fmt.Errorf("%d wins exceed %d hands", wins, s.Hands))
	}
	return errors.Join(errs...)
}
