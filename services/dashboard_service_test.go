package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gns-club/quiz-battle-system/models"
)

func TestDashboardStats(t *testing.T) {
	st, _ := newTestStore(t)
	seedTeams(t, st, 4)
	ids := seedQuestions(t, st, 9)
	ctx := context.Background()

	err := st.Update(ctx, func(state *models.State) error {
		state.QuestionByID(ids[0]).IsUsed = true
		state.Matches = []*models.Match{
			{ID: "m1", Status: models.MatchStatusCompleted},
			{ID: "m2", Status: models.MatchStatusActive},
			{ID: "m3", Status: models.MatchStatusPending},
		}
		return nil
	})
	require.NoError(t, err)

	stats, err := NewDashboardService(st).GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TeamCount)
	assert.Equal(t, 9, stats.QuestionCount)
	assert.Equal(t, 1, stats.UsedQuestions)
	assert.Equal(t, 8, stats.AvailableQuestions)
	assert.Equal(t, 2, stats.SuggestedPerTeam)
	assert.Equal(t, 3, stats.MatchCount)
	assert.Equal(t, 1, stats.CompletedMatches)
	assert.Equal(t, 1, stats.ActiveMatches)
	assert.Equal(t, 1, stats.PendingMatches)
}

func TestDashboardStatsEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	stats, err := NewDashboardService(st).GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TeamCount)
	assert.Zero(t, stats.SuggestedPerTeam)
}
