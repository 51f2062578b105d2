package gameid

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := Generate()
	assert.Len(t, id, Length)
	assert.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 1000 {
		id := Generate()
		require.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	t.Parallel()

	var ids []string
	for range 10 {
		ids = append(ids, Generate())
		time.Sleep(2 * time.Millisecond)
	}
	assert.True(t, slices.IsSorted(ids), "ids should sort in creation order: %v", ids)
}

func TestGeneratorUsesReader(t *testing.T) {
	t.Parallel()

	zeros := bytes.NewReader(make([]byte, 64))
	id := NewGenerator(zeros).Generate()
	require.NoError(t, Validate(id))

	u, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	for range 100 {
		u, err := uuid.NewV7()
		require.NoError(t, err)

		decoded, err := Decode(Encode(u))
		require.NoError(t, err)
		assert.Equal(t, u, decoded)
	}
}

func TestEncodeKnownValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("0", Length), Encode(uuid.UUID{}))
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), Encode(uuid.Max))
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{"too short", "0123"},
		{"first char too high", "8" + strings.Repeat("0", Length-1)},
		{"bad character", "0" + strings.Repeat("u", Length-1)},
		{"not version 7", strings.Repeat("0", Length)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.id))
		})
	}
}
