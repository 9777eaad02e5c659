package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gns-club/quiz-battle-system/models"
)

// BackupPersister decorates a Persister with an off-site copy of every
// snapshot. The local save and the remote upload run concurrently; a failed
// upload is logged but does not fail the mutation, the local copy stays the
// source of truth.
type BackupPersister struct {
	inner    Persister
	uploader FileUploader
	key      string
	logger   *slog.Logger
}

func NewBackupPersister(inner Persister, uploader FileUploader, key string, logger *slog.Logger) *BackupPersister {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackupPersister{inner: inner, uploader: uploader, key: key, logger: logger}
}

func (p *BackupPersister) Load(ctx context.Context) (*models.State, error) {
	return p.inner.Load(ctx)
}

func (p *BackupPersister) Save(ctx context.Context, state *models.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state for backup: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.inner.Save(gctx, state)
	})
	g.Go(func() error {
		if _, err := p.uploader.Upload(gctx, p.key, "application/json", bytes.NewReader(raw)); err != nil {
			p.logger.Error("snapshot backup upload failed", slog.String("key", p.key), slog.Any("error", err))
		}
		return nil
	})
	return g.Wait()
}
