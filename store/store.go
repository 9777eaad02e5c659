// Package store owns the single live copy of the data set. Every core
// mutation runs under one lock and is followed by a full-snapshot persist
// before the call returns, so check-then-set rules (one active match at a
// time) hold without any finer-grained coordination.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/storage"
)

type Store struct {
	mu        sync.Mutex
	state     *models.State
	persister storage.Persister
}

// Open loads the snapshot from the persister and wraps it in a Store.
func Open(ctx context.Context, persister storage.Persister) (*Store, error) {
	state, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return &Store{state: state, persister: persister}, nil
}

// View runs fn with read access to the state. fn must not retain or mutate
// anything it is handed.
func (s *Store) View(fn func(state *models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Update runs fn with write access to the state and persists the full
// snapshot afterwards. If fn returns an error nothing is persisted; fn is
// expected to leave the state untouched on failure paths.
func (s *Store) Update(ctx context.Context, fn func(state *models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.state); err != nil {
		return err
	}
	if err := s.persister.Save(ctx, s.state); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// Replace swaps in a brand-new state and persists it. Used by full reset.
func (s *Store) Replace(ctx context.Context, state *models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	if err := s.persister.Save(ctx, s.state); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}
