package services

import (
	"context"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.store.View(func(state *models.State) error {
		available := len(state.UnusedQuestions())
		stats = models.DashboardStats{
			TeamCount:          len(state.Teams),
			QuestionCount:      len(state.Questions),
			UsedQuestions:      len(state.Questions) - available,
			AvailableQuestions: available,
			MatchCount:         len(state.Matches),
		}
		if len(state.Teams) > 0 {
			stats.SuggestedPerTeam = available / len(state.Teams)
		}
		for _, m := range state.Matches {
			switch m.Status {
			case models.MatchStatusCompleted:
				stats.CompletedMatches++
			case models.MatchStatusPending:
				stats.PendingMatches++
			case models.MatchStatusActive:
				stats.ActiveMatches++
			}
		}
		return nil
	})
	return stats, err
}
