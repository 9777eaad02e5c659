package brackets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairingsCoversEveryTeamOnce(t *testing.T) {
	gen := NewRandomPairingGenerator(rand.New(rand.NewSource(1)))
	ids := []string{"a", "b", "c", "d", "e", "f"}

	pairings, err := gen.GeneratePairings(ids)
	require.NoError(t, err)
	require.Len(t, pairings, 3)

	seen := map[string]bool{}
	for i, p := range pairings {
		assert.Equal(t, i+1, p.Slot)
		assert.False(t, seen[p.Team1ID])
		assert.False(t, seen[p.Team2ID])
		seen[p.Team1ID] = true
		seen[p.Team2ID] = true
	}
	assert.Len(t, seen, 6)
}

func TestGeneratePairingsIsDeterministicPerSeed(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	first, err := NewRandomPairingGenerator(rand.New(rand.NewSource(99))).GeneratePairings(ids)
	require.NoError(t, err)
	second, err := NewRandomPairingGenerator(rand.New(rand.NewSource(99))).GeneratePairings(ids)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePairingsDoesNotMutateInput(t *testing.T) {
	gen := NewRandomPairingGenerator(rand.New(rand.NewSource(3)))
	ids := []string{"a", "b", "c", "d"}

	_, err := gen.GeneratePairings(ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestGeneratePairingsRejectsBadCounts(t *testing.T) {
	gen := NewRandomPairingGenerator(rand.New(rand.NewSource(4)))

	_, err := gen.GeneratePairings([]string{"a"})
	assert.Error(t, err)

	_, err = gen.GeneratePairings([]string{"a", "b", "c"})
	assert.Error(t, err)
}
