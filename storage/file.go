package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gns-club/quiz-battle-system/models"
)

// FilePersister stores the snapshot as a pretty-printed JSON flat file,
// the same {teams, questions, matches} document the desktop build used.
type FilePersister struct {
	path   string
	logger *slog.Logger
}

func NewFilePersister(path string, logger *slog.Logger) *FilePersister {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilePersister{path: path, logger: logger}
}

func (p *FilePersister) Load(ctx context.Context) (*models.State, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", p.path, err)
	}

	state := models.NewState()
	if err := json.Unmarshal(raw, state); err != nil {
		// A corrupt file must not brick the application. Start empty; the
		// next save overwrites the bad document.
		p.logger.Error("data file is corrupt, starting with empty state",
			slog.String("path", p.path), slog.Any("error", err))
		return models.NewState(), nil
	}
	if state.Teams == nil {
		state.Teams = []*models.Team{}
	}
	if state.Questions == nil {
		state.Questions = []*models.Question{}
	}
	if state.Matches == nil {
		state.Matches = []*models.Match{}
	}
	return state, nil
}

func (p *FilePersister) Save(ctx context.Context, state *models.State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	// Write-then-rename so a crash mid-write never truncates the data file.
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write temp data file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", p.path, err)
	}
	return nil
}
