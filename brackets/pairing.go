package brackets

import (
	"errors"
	"math/rand"
)

// Pairing is one head-to-head slot in a generated bracket.
type Pairing struct {
	Slot    int
	Team1ID string
	Team2ID string
}

// PairingGenerator produces the bracket slots for one scheduling run.
type PairingGenerator interface {
	GeneratePairings(teamIDs []string) ([]Pairing, error)

	GetName() string
}

// RandomPairingGenerator shuffles the roster with Fisher-Yates and pairs
// consecutive teams. The random source is injected so tests can pin the
// permutation.
type RandomPairingGenerator struct {
	rng *rand.Rand
}

func NewRandomPairingGenerator(rng *rand.Rand) PairingGenerator {
	return &RandomPairingGenerator{rng: rng}
}

func (g *RandomPairingGenerator) GetName() string {
	return "RandomPairing"
}

func (g *RandomPairingGenerator) GeneratePairings(teamIDs []string) ([]Pairing, error) {
	n := len(teamIDs)
	if n < 2 {
		return nil, errors.New("not enough teams to generate pairings (minimum 2)")
	}
	if n%2 != 0 {
		return nil, errors.New("cannot pair an odd number of teams")
	}

	ids := make([]string, n)
	copy(ids, teamIDs)
	for i := n - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}

	pairings := make([]Pairing, 0, n/2)
	for i := 0; i < n/2; i++ {
		pairings = append(pairings, Pairing{
			Slot:    i + 1,
			Team1ID: ids[i*2],
			Team2ID: ids[i*2+1],
		})
	}
	return pairings, nil
}
