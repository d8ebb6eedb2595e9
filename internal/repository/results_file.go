package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type fileResults struct {
	mu   sync.Mutex
	path string
}

// NewFileResultsRepository - stores results as a JSON document at path.
func NewFileResultsRepository(path string) ResultsRepository {
	return &fileResults{
		path: path,
	}
}

// Get - a missing file means no games were played yet.
func (that *fileResults) Get(_ context.Context) (*entity.Results, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &entity.Results{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var results entity.Results
	if err = json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptResults, err)
	}

	return &results, nil
}

func (that *fileResults) Save(_ context.Context, results *entity.Results) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.write(results)
}

func (that *fileResults) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.write(&entity.Results{})
}

// write replaces the file atomically through a temp file in the same directory.
func (that *fileResults) write(results *entity.Results) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal results: %w", err)
	}

	dir := filepath.Dir(that.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".results-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write results: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace results file: %w", err)
	}

	return nil
}
