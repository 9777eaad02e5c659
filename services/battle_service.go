package services

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/gns-club/quiz-battle-system/brackets"
	"github.com/gns-club/quiz-battle-system/metrics"
	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

// BattleService drives a single active match: turn order, question draw,
// answer evaluation, sudden-death escalation and completion. At most one
// match is active across the whole tournament; the check and the
// transition happen inside one store update.
type BattleService interface {
	Start(ctx context.Context, matchID string) (*models.BattleState, error)
	SubmitAnswer(ctx context.Context, matchID string, selectedAnswer *string, isTimeout bool) (*models.AnswerResult, error)
	GetBattleState(ctx context.Context, matchID string) (*models.BattleState, error)
	GetActiveMatch(ctx context.Context) (*models.BattleState, error)
}

type battleService struct {
	store  *store.Store
	rng    *rand.Rand
	hub    *brackets.Hub
	logger *slog.Logger
}

func NewBattleService(st *store.Store, rng *rand.Rand, hub *brackets.Hub, logger *slog.Logger) BattleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &battleService{store: st, rng: rng, hub: hub, logger: logger}
}

func (s *battleService) Start(ctx context.Context, matchID string) (*models.BattleState, error) {
	var snapshot *models.BattleState

	err := s.store.Update(ctx, func(state *models.State) error {
		match := state.MatchByID(matchID)
		if match == nil {
			return ErrMatchNotFound
		}
		switch match.Status {
		case models.MatchStatusActive:
			return ErrMatchAlreadyActive
		case models.MatchStatusCompleted:
			return ErrMatchAlreadyCompleted
		}
		if active := state.ActiveMatch(); active != nil {
			return ErrAnotherMatchActive
		}

		// Draw before touching the match so a drained pool rejects the
		// start with no state change.
		question := drawQuestion(state, s.rng)
		if question == nil {
			return ErrNoQuestionsAvailable
		}

		match.Status = models.MatchStatusActive
		match.CurrentTurn = models.SideTeam1
		match.CurrentQuestionID = &question.ID

		snapshot = buildBattleState(state, match)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("match started", slog.String("match_id", matchID), slog.Int("slot", snapshot.SlotNumber))
	s.hub.BroadcastEvent(brackets.EventMatchStarted, snapshot)
	return snapshot, nil
}

func (s *battleService) SubmitAnswer(ctx context.Context, matchID string, selectedAnswer *string, isTimeout bool) (*models.AnswerResult, error) {
	var result models.AnswerResult

	err := s.store.Update(ctx, func(state *models.State) error {
		match := state.MatchByID(matchID)
		if match == nil {
			return ErrMatchNotFound
		}
		if match.Status != models.MatchStatusActive {
			return ErrMatchNotActive
		}
		// Also shields against a timeout firing after the round already
		// advanced: the stale call finds no current question and is
		// rejected instead of double-recording.
		if match.CurrentQuestionID == nil {
			return ErrNoCurrentQuestion
		}
		question := state.QuestionByID(*match.CurrentQuestionID)
		if question == nil {
			return ErrNoCurrentQuestion
		}

		teamID := match.CurrentTeamID()
		isCorrect := !isTimeout && selectedAnswer != nil && *selectedAnswer == question.CorrectAnswer

		var selection *string
		if !isTimeout {
			selection = selectedAnswer
		}
		// The round is recorded no matter the outcome; timeouts count as
		// an attempt against the quota.
		match.Rounds = append(match.Rounds, models.Round{
			TeamID:         teamID,
			QuestionID:     question.ID,
			SelectedAnswer: selection,
			IsCorrect:      isCorrect,
			IsTimeout:      isTimeout,
		})

		if isCorrect {
			if match.CurrentTurn == models.SideTeam1 {
				match.Team1Score++
			} else {
				match.Team2Score++
			}
			if team := state.TeamByID(teamID); team != nil {
				team.Score++
			}
		}

		// Turn alternates after every answer, correct or not.
		match.CurrentTurn = match.CurrentTurn.Other()

		result = models.AnswerResult{
			IsCorrect:     isCorrect,
			CorrectAnswer: question.CorrectAnswer,
			IsTimeout:     isTimeout,
		}

		t1Rounds := match.RoundsFor(match.Team1ID)
		t2Rounds := match.RoundsFor(match.Team2ID)
		done := t1Rounds >= match.QuestionsPerTeam && t2Rounds >= match.QuestionsPerTeam

		if done {
			if match.Team1Score == match.Team2Score && !match.TiebreakerActivated {
				// Sudden death: one extra question per side, exactly once.
				match.TiebreakerActivated = true
				match.QuestionsPerTeam++
				result.IsTiebreaker = true
				if next := drawQuestion(state, s.rng); next != nil {
					match.CurrentQuestionID = &next.ID
				} else {
					completeMatch(match)
				}
			} else {
				completeMatch(match)
			}
		} else {
			// Pool exhaustion mid-match is not an error: the match is
			// forced to completion on whatever the score stands at.
			if next := drawQuestion(state, s.rng); next != nil {
				match.CurrentQuestionID = &next.ID
			} else {
				completeMatch(match)
			}
		}

		result.IsMatchComplete = match.Status == models.MatchStatusCompleted
		result.Team1Score = match.Team1Score
		result.Team2Score = match.Team2Score
		result.WinnerID = match.WinnerID
		if !result.IsMatchComplete {
			result.BattleState = buildBattleState(state, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case result.IsTimeout:
		metrics.AnswersSubmitted.WithLabelValues("timeout").Inc()
	case result.IsCorrect:
		metrics.AnswersSubmitted.WithLabelValues("correct").Inc()
	default:
		metrics.AnswersSubmitted.WithLabelValues("incorrect").Inc()
	}

	s.hub.BroadcastEvent(brackets.EventAnswerSubmitted, result)
	if result.IsMatchComplete {
		metrics.MatchesCompleted.Inc()
		s.logger.Info("match completed",
			slog.String("match_id", matchID),
			slog.Int("team1_score", result.Team1Score),
			slog.Int("team2_score", result.Team2Score))
		s.hub.BroadcastEvent(brackets.EventMatchCompleted, result)
		s.hub.BroadcastEvent(brackets.EventLeaderboardUpdated, nil)
	}
	return &result, nil
}

func (s *battleService) GetBattleState(ctx context.Context, matchID string) (*models.BattleState, error) {
	var snapshot *models.BattleState
	err := s.store.View(func(state *models.State) error {
		match := state.MatchByID(matchID)
		if match == nil {
			return ErrMatchNotFound
		}
		snapshot = buildBattleState(state, match)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetActiveMatch returns the battle state of the single active match, or
// nil when nothing is live.
func (s *battleService) GetActiveMatch(ctx context.Context) (*models.BattleState, error) {
	var snapshot *models.BattleState
	err := s.store.View(func(state *models.State) error {
		if match := state.ActiveMatch(); match != nil {
			snapshot = buildBattleState(state, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func completeMatch(match *models.Match) {
	match.Status = models.MatchStatusCompleted
	match.CurrentQuestionID = nil
	switch {
	case match.Team1Score > match.Team2Score:
		id := match.Team1ID
		match.WinnerID = &id
	case match.Team2Score > match.Team1Score:
		id := match.Team2ID
		match.WinnerID = &id
	default:
		match.WinnerID = nil
	}
}

// buildBattleState projects a match into the UI-safe snapshot. The live
// question is sanitized: the answer key stays server-side until the round
// resolves.
func buildBattleState(state *models.State, match *models.Match) *models.BattleState {
	snapshot := &models.BattleState{
		MatchID:              match.ID,
		SlotNumber:           match.SlotNumber,
		CurrentTurn:          match.CurrentTurn,
		Team1Score:           match.Team1Score,
		Team2Score:           match.Team2Score,
		Team1RoundsCompleted: match.RoundsFor(match.Team1ID),
		Team2RoundsCompleted: match.RoundsFor(match.Team2ID),
		QuestionsPerTeam:     match.QuestionsPerTeam,
		Status:               match.Status,
		WinnerID:             match.WinnerID,
		IsTiebreaker:         match.TiebreakerActivated,
	}
	if t1 := state.TeamByID(match.Team1ID); t1 != nil {
		snapshot.Team1 = t1.Public()
	}
	if t2 := state.TeamByID(match.Team2ID); t2 != nil {
		snapshot.Team2 = t2.Public()
	}
	if match.CurrentQuestionID != nil {
		if q := state.QuestionByID(*match.CurrentQuestionID); q != nil {
			snapshot.CurrentQuestion = q.Sanitized()
		}
	}
	return snapshot
}
