package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/storage"
	"github.com/gns-club/quiz-battle-system/store"
)

func newTestStore(t *testing.T) (*store.Store, *storage.MemoryPersister) {
	t.Helper()
	persister := storage.NewMemoryPersister()
	st, err := store.Open(context.Background(), persister)
	require.NoError(t, err)
	return st, persister
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// seedTeams inserts n teams directly and returns their ids in registry order.
func seedTeams(t *testing.T, st *store.Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	err := st.Update(context.Background(), func(state *models.State) error {
		for i := 0; i < n; i++ {
			team := &models.Team{
				ID:         uuid.NewString(),
				SchoolName: "School " + string(rune('A'+i)),
				Member1:    "Member One",
				Member2:    "Member Two",
			}
			state.Teams = append(state.Teams, team)
			ids = append(ids, team.ID)
		}
		return nil
	})
	require.NoError(t, err)
	return ids
}

// seedQuestions inserts n unused questions whose correct answer is always A.
func seedQuestions(t *testing.T, st *store.Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	err := st.Update(context.Background(), func(state *models.State) error {
		for i := 0; i < n; i++ {
			q := &models.Question{
				ID:            uuid.NewString(),
				Question:      "Question?",
				OptionA:       "right",
				OptionB:       "wrong",
				OptionC:       "wrong",
				OptionD:       "wrong",
				CorrectAnswer: models.OptionA,
			}
			state.Questions = append(state.Questions, q)
			ids = append(ids, q.ID)
		}
		return nil
	})
	require.NoError(t, err)
	return ids
}

func strptr(s string) *string { return &s }
