package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lox/showdown/poker"
)

// EvalCmd evaluates card sets and ranks them against each other.
type EvalCmd struct {
	Hands []string `arg:"" help:"Card sets of 5 to 7 cards, e.g. 'AsKs QsJsTs' (quote each set)"`
	Board string   `short:"b" help:"Community cards added to every set"`
}

type evaluation struct {
	input []poker.Card
	hand  poker.EvaluatedHand
}

func (cmd *EvalCmd) Run(_ *Globals) error {
	evals, err := evaluateAll(cmd.Hands, cmd.Board)
	if err != nil {
		return err
	}
	printEvaluations(os.Stdout, evals)
	return nil
}

func evaluateAll(sets []string, board string) ([]evaluation, error) {
	if len(sets) == 0 {
		return nil, errors.New("at least one card set is required")
	}
	shared, err := poker.ParseCards(board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	evals := make([]evaluation, 0, len(sets))
	for i, set := range sets {
		cards, err := poker.ParseCards(set)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		cards = append(cards, shared...)
		hand, err := poker.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		evals = append(evals, evaluation{input: cards, hand: hand})
	}
	return evals, nil
}

// winners returns the indexes of the strongest evaluations.
func winners(evals []evaluation) []int {
	var best []int
	for i, e := range evals {
		if len(best) == 0 {
			best = []int{i}
			continue
		}
		switch poker.Compare(e.hand, evals[best[0]].hand) {
		case poker.Greater:
			best = []int{i}
		case poker.Equal:
			best = append(best, i)
		}
	}
	return best
}

func printEvaluations(w io.Writer, evals []evaluation) {
	best := winners(evals)
	for i, e := range evals {
		marker := "  "
		if slices.Contains(best, i) {
			marker = winStyle.Render("★ ")
			if len(best) > 1 {
				marker = tieStyle.Render("= ")
			}
		}
		fmt.Fprintf(w, "%s%s  %s  [%s]\n", marker, renderCards(e.input),
			categoryStyle.Render(e.hand.Category.String()), renderCards(e.hand.Cards[:]))
	}

	if len(evals) == 2 {
		_, why := poker.CompareWithExplanation(evals[0].hand, evals[1].hand)
		fmt.Fprintln(w, headerStyle.Render(why))
	}
}
