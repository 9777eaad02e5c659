package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gns-club/quiz-battle-system/models"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS quiz_snapshot (
    id         INT PRIMARY KEY CHECK (id = 1),
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresPersister stores the snapshot as a single JSONB row. The store is
// a plain key-value boundary here, so one row holding the full document is
// all the schema there is.
type PostgresPersister struct {
	db *sql.DB
}

func NewPostgresPersister(ctx context.Context, db *sql.DB) (*PostgresPersister, error) {
	if _, err := db.ExecContext(ctx, snapshotSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshot table: %w", err)
	}
	return &PostgresPersister{db: db}, nil
}

func (p *PostgresPersister) Load(ctx context.Context) (*models.State, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx, `SELECT data FROM quiz_snapshot WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot row: %w", err)
	}

	state := models.NewState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return state, nil
}

func (p *PostgresPersister) Save(ctx context.Context, state *models.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO quiz_snapshot (id, data, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		raw)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot row: %w", err)
	}
	return nil
}
