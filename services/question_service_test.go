package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gns-club/quiz-battle-system/models"
)

func TestQuestionServiceAdd(t *testing.T) {
	st, persister := newTestStore(t)
	svc := NewQuestionService(st)
	ctx := context.Background()

	q, err := svc.Add(ctx, AddQuestionInput{
		Question:      "What does CPU stand for?",
		OptionA:       "Central Processing Unit",
		OptionB:       "Computer Processing Unit",
		OptionC:       "Central Program Unit",
		OptionD:       "Computer Program Unit",
		CorrectAnswer: "a",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "A", q.CorrectAnswer, "correct answer should be uppercased")
	assert.False(t, q.IsUsed)
	assert.Equal(t, 1, persister.Saves(), "mutation should persist the snapshot")
}

func TestQuestionServiceAddRejectsEmptyText(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)

	_, err := svc.Add(context.Background(), AddQuestionInput{Question: "   "})
	assert.ErrorIs(t, err, ErrQuestionTextRequired)
}

func TestQuestionServiceAddRejectsBadOption(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)

	_, err := svc.Add(context.Background(), AddQuestionInput{Question: "Q?", CorrectAnswer: "E"})
	assert.ErrorIs(t, err, ErrInvalidAnswerOption)
}

func TestQuestionServiceUpdatePartialMerge(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)
	ctx := context.Background()

	q, err := svc.Add(ctx, AddQuestionInput{Question: "Old?", OptionA: "one", CorrectAnswer: "B"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, q.ID, UpdateQuestionInput{Question: strptr("New?")})
	require.NoError(t, err)
	assert.Equal(t, "New?", updated.Question)
	assert.Equal(t, "one", updated.OptionA, "omitted fields are preserved")
	assert.Equal(t, "B", updated.CorrectAnswer)
}

func TestQuestionServiceUpdateNotFound(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)

	_, err := svc.Update(context.Background(), "missing", UpdateQuestionInput{Question: strptr("Q?")})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionServiceDelete(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)
	ctx := context.Background()

	q, err := svc.Add(ctx, AddQuestionInput{Question: "Q?"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, q.ID))
	assert.ErrorIs(t, svc.Delete(ctx, q.ID), ErrQuestionNotFound)

	questions, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestBulkImportFieldSynonyms(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)

	records := []map[string]string{
		{"question": "Q1?", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correctAnswer": "b"},
		{"Question": "Q2?", "option_a": "a", "option_b": "b", "option_c": "c", "option_d": "d", "correct_answer": "C"},
		{"question": "Q3?", "OptionA": "a", "OptionB": "b", "OptionC": "c", "OptionD": "d", "CorrectAnswer": "D"},
		{"question": "Q4?", "optiona": "a", "optionb": "b", "optionc": "c", "optiond": "d", "correctanswer": "a"},
	}

	added, err := svc.BulkImport(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, added, 4)

	assert.Equal(t, "B", added[0].CorrectAnswer)
	assert.Equal(t, "C", added[1].CorrectAnswer)
	assert.Equal(t, "D", added[2].CorrectAnswer)
	assert.Equal(t, "A", added[3].CorrectAnswer)
	for _, q := range added {
		assert.Equal(t, "a", q.OptionA)
		assert.False(t, q.IsUsed)
	}
}

func TestBulkImportDropsEmptyAndDefaultsAnswer(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)

	records := []map[string]string{
		{"question": "", "optionA": "a"},
		{"optionA": "orphaned options, no text"},
		{"question": "Kept?", "optionA": "a", "optionB": "b"},
	}

	added, err := svc.BulkImport(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, added, 1, "records without question text are dropped, not fatal")
	assert.Equal(t, "Kept?", added[0].Question)
	assert.Equal(t, "A", added[0].CorrectAnswer, "missing correct answer defaults to A")
}

func TestDrawExcludesUsedUntilReset(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewQuestionService(st)
	ctx := context.Background()
	rng := testRNG(7)

	seedQuestions(t, st, 3)

	drawn := map[string]bool{}
	err := st.Update(ctx, func(state *models.State) error {
		for i := 0; i < 3; i++ {
			q := drawQuestion(state, rng)
			require.NotNil(t, q)
			assert.False(t, drawn[q.ID], "a used question must not be drawn again")
			drawn[q.ID] = true
			assert.True(t, q.IsUsed, "used flag flips at draw time")
		}
		assert.Nil(t, drawQuestion(state, rng), "exhausted pool signals nil")
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetUsed(ctx))

	err = st.View(func(state *models.State) error {
		assert.Len(t, state.UnusedQuestions(), 3)
		return nil
	})
	require.NoError(t, err)
}
