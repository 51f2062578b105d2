package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAction(t *testing.T) {
	t.Parallel()

	facing := DecisionRequest{ToCall: 10, Chips: 100}
	free := DecisionRequest{ToCall: 0, Chips: 100}
	short := DecisionRequest{ToCall: 50, Chips: 30}

	tests := []struct {
		name  string
		req   DecisionRequest
		a     Action
		legal bool
	}{
		{"fold facing bet", facing, Fold(), true},
		{"fold when free", free, Fold(), true},
		{"check when free", free, Check(), true},
		{"check facing bet", facing, Check(), false},
		{"call facing bet", facing, Call(), true},
		{"call when free", free, Call(), false},
		{"call short", short, Call(), false},
		{"call exact stack", DecisionRequest{ToCall: 30, Chips: 30}, Call(), true},
		{"raise", facing, Raise(20), true},
		{"raise whole stack", facing, Raise(90), true},
		{"raise too big", facing, Raise(91), false},
		{"raise zero", facing, Raise(0), false},
		{"raise negative", free, Raise(-5), false},
		{"all-in short", short, AllIn(30), true},
		{"all-in no chips", DecisionRequest{Chips: 0}, AllIn(0), false},
		{"unknown kind", free, Action{Kind: 42}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAction(tt.req, tt.a)
			if tt.legal {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIllegalAction)
			}
		})
	}
}

func TestLegalActions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ActionKind{ActionFold, ActionCheck, ActionRaise, ActionAllIn}, LegalActions(DecisionRequest{Chips: 100}))
	assert.Equal(t, []ActionKind{ActionFold, ActionCall, ActionRaise, ActionAllIn}, LegalActions(DecisionRequest{ToCall: 10, Chips: 100}))
	assert.Equal(t, []ActionKind{ActionFold, ActionCall, ActionAllIn}, LegalActions(DecisionRequest{ToCall: 10, Chips: 10}))
	assert.Equal(t, []ActionKind{ActionFold, ActionAllIn}, LegalActions(DecisionRequest{ToCall: 50, Chips: 10}))
	assert.Empty(t, LegalActions(DecisionRequest{}))
}

func TestLegalActionsAgreeWithValidation(t *testing.T) {
	t.Parallel()

	for toCall := 0; toCall <= 12; toCall++ {
		for chips := 1; chips <= 12; chips++ {
			req := DecisionRequest{ToCall: toCall, Chips: chips}
			for _, kind := range LegalActions(req) {
				a := Action{Kind: kind, Amount: 1}
				assert.NoError(t, ValidateAction(req, a), "to_call=%d chips=%d kind=%s", toCall, chips, kind)
			}
		}
	}
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fold", Fold().String())
	assert.Equal(t, "raise 20", Raise(20).String())
	assert.Equal(t, "allin 75", AllIn(75).String())
}

func TestDeciderFunc(t *testing.T) {
	t.Parallel()

	var got DecisionRequest
	d := DeciderFunc(func(req DecisionRequest) Action {
		got = req
		return Call()
	})
	assert.Equal(t, Call(), d.Decide(DecisionRequest{ToCall: 4}))
	assert.Equal(t, 4, got.ToCall)
}
