package services

import (
	"context"
	"sort"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

const deletedQuestionPlaceholder = "(Deleted)"

type LeaderboardService interface {
	// Rank sorts teams by score descending; registry order breaks ties.
	Rank(ctx context.Context) ([]models.RankedTeam, error)
	// AllComplete is true once at least one match exists and every match
	// has completed.
	AllComplete(ctx context.Context) (bool, error)
	MatchHistory(ctx context.Context, matchID string) (*models.MatchHistory, error)
}

type leaderboardService struct {
	store *store.Store
}

func NewLeaderboardService(st *store.Store) LeaderboardService {
	return &leaderboardService{store: st}
}

func (s *leaderboardService) Rank(ctx context.Context) ([]models.RankedTeam, error) {
	ranked := []models.RankedTeam{}
	err := s.store.View(func(state *models.State) error {
		for _, t := range state.Teams {
			ranked = append(ranked, models.RankedTeam{Team: *t})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

func (s *leaderboardService) AllComplete(ctx context.Context) (bool, error) {
	complete := false
	err := s.store.View(func(state *models.State) error {
		if len(state.Matches) == 0 {
			return nil
		}
		for _, m := range state.Matches {
			if m.Status != models.MatchStatusCompleted {
				return nil
			}
		}
		complete = true
		return nil
	})
	return complete, err
}

// MatchHistory resolves each recorded round against the current pool and
// registry. Dangling references never fail the projection: a deleted
// question shows placeholder text, a deleted team shows "?".
func (s *leaderboardService) MatchHistory(ctx context.Context, matchID string) (*models.MatchHistory, error) {
	var history *models.MatchHistory
	err := s.store.View(func(state *models.State) error {
		match := state.MatchByID(matchID)
		if match == nil {
			return ErrMatchNotFound
		}

		history = &models.MatchHistory{
			MatchID:             match.ID,
			SlotNumber:          match.SlotNumber,
			Team1Score:          match.Team1Score,
			Team2Score:          match.Team2Score,
			Status:              match.Status,
			Rounds:              make([]models.HistoryRound, 0, len(match.Rounds)),
			TiebreakerActivated: match.TiebreakerActivated,
		}
		if t := state.TeamByID(match.Team1ID); t != nil {
			copied := *t
			history.Team1 = &copied
		}
		if t := state.TeamByID(match.Team2ID); t != nil {
			copied := *t
			history.Team2 = &copied
		}
		if match.WinnerID != nil {
			if t := state.TeamByID(*match.WinnerID); t != nil {
				copied := *t
				history.Winner = &copied
			}
		}

		for i, round := range match.Rounds {
			entry := models.HistoryRound{
				Index:          i + 1,
				TeamID:         round.TeamID,
				TeamName:       "?",
				Question:       deletedQuestionPlaceholder,
				CorrectAnswer:  "?",
				SelectedAnswer: round.SelectedAnswer,
				IsCorrect:      round.IsCorrect,
				IsTimeout:      round.IsTimeout,
			}
			if t := state.TeamByID(round.TeamID); t != nil {
				entry.TeamName = t.SchoolName
			}
			if q := state.QuestionByID(round.QuestionID); q != nil {
				entry.Question = q.Question
				entry.CorrectAnswer = q.CorrectAnswer
			}
			history.Rounds = append(history.Rounds, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}
