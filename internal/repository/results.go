package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrCorruptResults = errors.New("results data is corrupt")

type ResultsRepository interface {
	Get(ctx context.Context) (*entity.Results, error)
	Save(ctx context.Context, results *entity.Results) error
	Reset(ctx context.Context) error
}
