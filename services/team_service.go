package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

type AddTeamInput struct {
	SchoolName string `json:"schoolName"`
	Member1    string `json:"member1"`
	Member2    string `json:"member2"`
}

type UpdateTeamInput struct {
	SchoolName *string `json:"schoolName"`
	Member1    *string `json:"member1"`
	Member2    *string `json:"member2"`
}

type TeamService interface {
	List(ctx context.Context) ([]models.Team, error)
	Add(ctx context.Context, input AddTeamInput) (*models.Team, error)
	Update(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, id string) error
	ResetScores(ctx context.Context) error
}

type teamService struct {
	store *store.Store
}

func NewTeamService(st *store.Store) TeamService {
	return &teamService{store: st}
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	out := []models.Team{}
	err := s.store.View(func(state *models.State) error {
		for _, t := range state.Teams {
			out = append(out, *t)
		}
		return nil
	})
	return out, err
}

func (s *teamService) Add(ctx context.Context, input AddTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.SchoolName) == "" {
		return nil, ErrSchoolNameRequired
	}

	team := &models.Team{
		ID:         uuid.NewString(),
		SchoolName: input.SchoolName,
		Member1:    input.Member1,
		Member2:    input.Member2,
		Score:      0,
	}

	err := s.store.Update(ctx, func(state *models.State) error {
		state.Teams = append(state.Teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Update merges the supplied fields over the existing record; omitted
// fields are preserved. Cumulative score is not caller-writable.
func (s *teamService) Update(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error) {
	if input.SchoolName != nil && strings.TrimSpace(*input.SchoolName) == "" {
		return nil, ErrSchoolNameRequired
	}

	var updated models.Team
	err := s.store.Update(ctx, func(state *models.State) error {
		t := state.TeamByID(id)
		if t == nil {
			return ErrTeamNotFound
		}
		if input.SchoolName != nil {
			t.SchoolName = *input.SchoolName
		}
		if input.Member1 != nil {
			t.Member1 = *input.Member1
		}
		if input.Member2 != nil {
			t.Member2 = *input.Member2
		}
		updated = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state *models.State) error {
		for i, t := range state.Teams {
			if t.ID == id {
				state.Teams = append(state.Teams[:i], state.Teams[i+1:]...)
				return nil
			}
		}
		return ErrTeamNotFound
	})
}

func (s *teamService) ResetScores(ctx context.Context) error {
	return s.store.Update(ctx, func(state *models.State) error {
		resetScores(state)
		return nil
	})
}

func resetScores(state *models.State) {
	for _, t := range state.Teams {
		t.Score = 0
	}
}
