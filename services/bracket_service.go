package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gns-club/quiz-battle-system/brackets"
	"github.com/gns-club/quiz-battle-system/metrics"
	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

type GenerateResult struct {
	Matches          []models.Match `json:"matches"`
	QuestionsPerTeam int            `json:"questionsPerTeam"`
}

type BracketService interface {
	// Generate schedules a fresh bracket. questionsPerTeam = 0 means
	// derive the quota from the available question supply.
	Generate(ctx context.Context, questionsPerTeam int) (*GenerateResult, error)
	List(ctx context.Context) ([]models.Match, error)
}

type bracketService struct {
	store     *store.Store
	generator brackets.PairingGenerator
	hub       *brackets.Hub
	logger    *slog.Logger
}

func NewBracketService(st *store.Store, generator brackets.PairingGenerator, hub *brackets.Hub, logger *slog.Logger) BracketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bracketService{store: st, generator: generator, hub: hub, logger: logger}
}

func (s *bracketService) List(ctx context.Context) ([]models.Match, error) {
	out := []models.Match{}
	err := s.store.View(func(state *models.State) error {
		for _, m := range state.Matches {
			out = append(out, *m)
		}
		return nil
	})
	return out, err
}

// Generate replaces the whole bracket and resets every team score. All
// precondition checks run before any mutation, so a rejected run leaves
// the previous bracket untouched.
func (s *bracketService) Generate(ctx context.Context, questionsPerTeam int) (*GenerateResult, error) {
	var result GenerateResult

	err := s.store.Update(ctx, func(state *models.State) error {
		teamCount := len(state.Teams)
		if teamCount < 2 {
			return fmt.Errorf("%w: have %d", ErrNotEnoughTeams, teamCount)
		}
		if teamCount%2 != 0 {
			return fmt.Errorf("%w: have %d", ErrOddTeamCount, teamCount)
		}

		available := len(state.UnusedQuestions())
		totalPairs := teamCount / 2

		qpt := questionsPerTeam
		if qpt <= 0 {
			qpt = available / teamCount
			if qpt < 1 {
				qpt = 1
			}
		}

		needed := qpt * 2 * totalPairs
		if available < needed {
			return fmt.Errorf("%w: need %d available questions for %d questions per team, only %d available",
				ErrNotEnoughQuestions, needed, qpt, available)
		}

		teamIDs := make([]string, 0, teamCount)
		for _, t := range state.Teams {
			teamIDs = append(teamIDs, t.ID)
		}

		pairings, err := s.generator.GeneratePairings(teamIDs)
		if err != nil {
			return fmt.Errorf("failed to generate pairings: %w", err)
		}

		matches := make([]*models.Match, 0, len(pairings))
		for _, p := range pairings {
			matches = append(matches, &models.Match{
				ID:               uuid.NewString(),
				SlotNumber:       p.Slot,
				Team1ID:          p.Team1ID,
				Team2ID:          p.Team2ID,
				Status:           models.MatchStatusPending,
				Rounds:           []models.Round{},
				CurrentTurn:      models.SideTeam1,
				QuestionsPerTeam: qpt,
			})
		}

		// Destructive: the previous bracket is discarded and cumulative
		// scores start over.
		state.Matches = matches
		resetScores(state)

		result.QuestionsPerTeam = qpt
		result.Matches = make([]models.Match, 0, len(matches))
		for _, m := range matches {
			result.Matches = append(result.Matches, *m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BracketsGenerated.Inc()
	s.logger.Info("bracket generated",
		slog.Int("matches", len(result.Matches)),
		slog.Int("questions_per_team", result.QuestionsPerTeam))
	s.hub.BroadcastEvent(brackets.EventBracketGenerated, result)

	return &result, nil
}
