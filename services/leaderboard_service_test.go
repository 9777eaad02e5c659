package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gns-club/quiz-battle-system/brackets"
	"github.com/gns-club/quiz-battle-system/models"
)

func TestRankOrdersByScoreWithStableTies(t *testing.T) {
	st, _ := newTestStore(t)
	ids := seedTeams(t, st, 4)
	ctx := context.Background()

	err := st.Update(ctx, func(state *models.State) error {
		state.TeamByID(ids[0]).Score = 1
		state.TeamByID(ids[1]).Score = 3
		state.TeamByID(ids[2]).Score = 1
		state.TeamByID(ids[3]).Score = 0
		return nil
	})
	require.NoError(t, err)

	ranked, err := NewLeaderboardService(st).Rank(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	assert.Equal(t, ids[1], ranked[0].ID)
	assert.Equal(t, 1, ranked[0].Rank)
	// Tied teams keep registry order.
	assert.Equal(t, ids[0], ranked[1].ID)
	assert.Equal(t, ids[2], ranked[2].ID)
	assert.Equal(t, ids[3], ranked[3].ID)
	assert.Equal(t, 4, ranked[3].Rank)
}

func TestAllComplete(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewLeaderboardService(st)
	ctx := context.Background()

	complete, err := svc.AllComplete(ctx)
	require.NoError(t, err)
	assert.False(t, complete, "no matches means not complete")

	err = st.Update(ctx, func(state *models.State) error {
		state.Matches = []*models.Match{
			{ID: "m1", Status: models.MatchStatusCompleted},
			{ID: "m2", Status: models.MatchStatusPending},
		}
		return nil
	})
	require.NoError(t, err)

	complete, err = svc.AllComplete(ctx)
	require.NoError(t, err)
	assert.False(t, complete)

	err = st.Update(ctx, func(state *models.State) error {
		state.MatchByID("m2").Status = models.MatchStatusCompleted
		return nil
	})
	require.NoError(t, err)

	complete, err = svc.AllComplete(ctx)
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestMatchHistorySurvivesDeletedQuestion(t *testing.T) {
	st, _ := newTestStore(t)
	seedTeams(t, st, 2)
	seedQuestions(t, st, 2)
	ctx := context.Background()

	bracket := NewBracketService(st, brackets.NewRandomPairingGenerator(testRNG(21)), nil, nil)
	battle := NewBattleService(st, testRNG(22), nil, nil)
	questions := NewQuestionService(st)
	lb := NewLeaderboardService(st)

	result, err := bracket.Generate(ctx, 1)
	require.NoError(t, err)
	match := result.Matches[0]

	_, err = battle.Start(ctx, match.ID)
	require.NoError(t, err)

	// Play the match out with fixed answers; seeded questions are all A.
	_, err = battle.SubmitAnswer(ctx, match.ID, strptr(models.OptionA), false)
	require.NoError(t, err)
	answer, err := battle.SubmitAnswer(ctx, match.ID, strptr(models.OptionB), false)
	require.NoError(t, err)
	require.True(t, answer.IsMatchComplete)

	// Delete one of the played questions.
	var playedQuestionID string
	err = st.View(func(state *models.State) error {
		playedQuestionID = state.MatchByID(match.ID).Rounds[0].QuestionID
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, questions.Delete(ctx, playedQuestionID))

	history, err := lb.MatchHistory(ctx, match.ID)
	require.NoError(t, err, "dangling question reference must not fail history")
	require.Len(t, history.Rounds, 2)
	assert.Equal(t, 1, history.Rounds[0].Index)
	assert.Equal(t, "(Deleted)", history.Rounds[0].Question)
	assert.Equal(t, "?", history.Rounds[0].CorrectAnswer)
	assert.NotEqual(t, "(Deleted)", history.Rounds[1].Question)
	require.NotNil(t, history.Winner)
	assert.Equal(t, match.Team1ID, history.Winner.ID)
}

func TestMatchHistoryNotFound(t *testing.T) {
	st, _ := newTestStore(t)
	_, err := NewLeaderboardService(st).MatchHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
