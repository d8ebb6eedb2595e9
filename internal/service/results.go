package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type ResultsService interface {
	GetResults(ctx context.Context) (*entity.Results, error)
	RecordOutcome(ctx context.Context, outcome entity.Outcome) (*entity.Results, error)
	ResetResults(ctx context.Context) error
}

type resultsRepo interface {
	Get(ctx context.Context) (*entity.Results, error)
	Save(ctx context.Context, results *entity.Results) error
	Reset(ctx context.Context) error
}

type resultsService struct {
	resultsRepo resultsRepo
}

func NewResultsService(resultsRepo resultsRepo) ResultsService {
	return &resultsService{
		resultsRepo: resultsRepo,
	}
}

func (that *resultsService) GetResults(ctx context.Context) (*entity.Results, error) {
	results, err := that.resultsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve results from storage: %w", err)
	}

	return results, nil
}

// RecordOutcome - loads the counters, adds the outcome and stores them back.
func (that *resultsService) RecordOutcome(ctx context.Context, outcome entity.Outcome) (*entity.Results, error) {
	results, err := that.GetResults(ctx)
	if err != nil {
		return nil, err
	}

	if err = results.Record(outcome); err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	if err = that.resultsRepo.Save(ctx, results); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}

	return results, nil
}

func (that *resultsService) ResetResults(ctx context.Context) error {
	if err := that.resultsRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset results: %w", err)
	}

	return nil
}
