package storage

import (
	"context"
	"sync"

	"github.com/gns-club/quiz-battle-system/models"
)

// Persister is the durable boundary for the full data set. Load is called
// once at startup; Save receives the complete snapshot after every mutation.
// A missing or unreadable backing record loads as an empty state rather
// than failing.
type Persister interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
}

// MemoryPersister keeps the snapshot in process memory only. Used in tests
// and for ephemeral runs.
type MemoryPersister struct {
	mu    sync.Mutex
	state *models.State
	saves int
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(ctx context.Context) (*models.State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == nil {
		return models.NewState(), nil
	}
	return p.state, nil
}

func (p *MemoryPersister) Save(ctx context.Context, state *models.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.saves++
	return nil
}

// Saves reports how many snapshots have been written.
func (p *MemoryPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
