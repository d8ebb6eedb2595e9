package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const resultsKey = "results"

type dbResults struct {
	client *redis.Client
}

func NewRedisResultsRepository(client *redis.Client) ResultsRepository {
	return &dbResults{
		client: client,
	}
}

func (that *dbResults) Get(ctx context.Context) (*entity.Results, error) {
	response, err := that.client.Get(ctx, resultsKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Results{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	var results entity.Results
	if err = json.Unmarshal([]byte(response), &results); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptResults, err)
	}

	return &results, nil
}

func (that *dbResults) Save(ctx context.Context, results *entity.Results) error {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("could not marshal results: %w", err)
	}

	if err = that.client.Set(ctx, resultsKey, resultsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set results: %w", err)
	}

	return nil
}

func (that *dbResults) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, resultsKey).Err(); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}

	return nil
}
