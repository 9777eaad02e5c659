package services

import (
	"context"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/gns-club/quiz-battle-system/metrics"
	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

type AddQuestionInput struct {
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
}

type UpdateQuestionInput struct {
	Question      *string `json:"question"`
	OptionA       *string `json:"optionA"`
	OptionB       *string `json:"optionB"`
	OptionC       *string `json:"optionC"`
	OptionD       *string `json:"optionD"`
	CorrectAnswer *string `json:"correctAnswer"`
}

type QuestionService interface {
	List(ctx context.Context) ([]models.Question, error)
	Add(ctx context.Context, input AddQuestionInput) (*models.Question, error)
	Update(ctx context.Context, id string, input UpdateQuestionInput) (*models.Question, error)
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, records []map[string]string) ([]models.Question, error)
	ResetUsed(ctx context.Context) error
}

type questionService struct {
	store *store.Store
}

func NewQuestionService(st *store.Store) QuestionService {
	return &questionService{store: st}
}

func (s *questionService) List(ctx context.Context) ([]models.Question, error) {
	out := []models.Question{}
	err := s.store.View(func(state *models.State) error {
		for _, q := range state.Questions {
			out = append(out, *q)
		}
		return nil
	})
	return out, err
}

func (s *questionService) Add(ctx context.Context, input AddQuestionInput) (*models.Question, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, ErrQuestionTextRequired
	}
	answer := strings.ToUpper(strings.TrimSpace(input.CorrectAnswer))
	if answer == "" {
		answer = models.OptionA
	}
	if !validOption(answer) {
		return nil, ErrInvalidAnswerOption
	}

	question := &models.Question{
		ID:            uuid.NewString(),
		Question:      input.Question,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: answer,
		IsUsed:        false,
	}

	err := s.store.Update(ctx, func(state *models.State) error {
		state.Questions = append(state.Questions, question)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) Update(ctx context.Context, id string, input UpdateQuestionInput) (*models.Question, error) {
	if input.Question != nil && strings.TrimSpace(*input.Question) == "" {
		return nil, ErrQuestionTextRequired
	}
	var answer string
	if input.CorrectAnswer != nil {
		answer = strings.ToUpper(strings.TrimSpace(*input.CorrectAnswer))
		if !validOption(answer) {
			return nil, ErrInvalidAnswerOption
		}
	}

	var updated models.Question
	err := s.store.Update(ctx, func(state *models.State) error {
		q := state.QuestionByID(id)
		if q == nil {
			return ErrQuestionNotFound
		}
		// Partial merge: only fields the caller supplied change.
		if input.Question != nil {
			q.Question = *input.Question
		}
		if input.OptionA != nil {
			q.OptionA = *input.OptionA
		}
		if input.OptionB != nil {
			q.OptionB = *input.OptionB
		}
		if input.OptionC != nil {
			q.OptionC = *input.OptionC
		}
		if input.OptionD != nil {
			q.OptionD = *input.OptionD
		}
		if input.CorrectAnswer != nil {
			q.CorrectAnswer = answer
		}
		updated = *q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state *models.State) error {
		for i, q := range state.Questions {
			if q.ID == id {
				state.Questions = append(state.Questions[:i], state.Questions[i+1:]...)
				return nil
			}
		}
		return ErrQuestionNotFound
	})
}

// questionFieldSynonyms maps each canonical field to the accepted import
// header variants, in priority order. First present key wins.
var questionFieldSynonyms = map[string][]string{
	"question":      {"question", "Question"},
	"optionA":       {"optionA", "option_a", "OptionA", "optiona"},
	"optionB":       {"optionB", "option_b", "OptionB", "optionb"},
	"optionC":       {"optionC", "option_c", "OptionC", "optionc"},
	"optionD":       {"optionD", "option_d", "OptionD", "optiond"},
	"correctAnswer": {"correctAnswer", "correct_answer", "CorrectAnswer", "correctanswer"},
}

func pickField(record map[string]string, canonical string) string {
	for _, key := range questionFieldSynonyms[canonical] {
		if v, ok := record[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// BulkImport normalizes loosely-typed import records onto the canonical
// question shape. Records with empty question text are dropped silently;
// a missing correct answer defaults to option A. Only the accepted
// questions are returned.
func (s *questionService) BulkImport(ctx context.Context, records []map[string]string) ([]models.Question, error) {
	accepted := []models.Question{}
	for _, record := range records {
		text := pickField(record, "question")
		if strings.TrimSpace(text) == "" {
			continue
		}
		answer := strings.ToUpper(pickField(record, "correctAnswer"))
		if answer == "" {
			answer = models.OptionA
		}
		accepted = append(accepted, models.Question{
			ID:            uuid.NewString(),
			Question:      text,
			OptionA:       pickField(record, "optionA"),
			OptionB:       pickField(record, "optionB"),
			OptionC:       pickField(record, "optionC"),
			OptionD:       pickField(record, "optionD"),
			CorrectAnswer: answer,
			IsUsed:        false,
		})
	}

	err := s.store.Update(ctx, func(state *models.State) error {
		for i := range accepted {
			q := accepted[i]
			state.Questions = append(state.Questions, &q)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

func (s *questionService) ResetUsed(ctx context.Context) error {
	return s.store.Update(ctx, func(state *models.State) error {
		for _, q := range state.Questions {
			q.IsUsed = false
		}
		return nil
	})
}

func validOption(answer string) bool {
	switch answer {
	case models.OptionA, models.OptionB, models.OptionC, models.OptionD:
		return true
	}
	return false
}

// drawQuestion picks uniformly among unused questions and flags the pick as
// used at draw time, so an in-flight question can never be drawn twice.
// Returns nil when the pool is exhausted.
func drawQuestion(state *models.State, rng *rand.Rand) *models.Question {
	pool := state.UnusedQuestions()
	if len(pool) == 0 {
		return nil
	}
	q := pool[rng.Intn(len(pool))]
	q.IsUsed = true
	metrics.QuestionsDrawn.Inc()
	return q
}
