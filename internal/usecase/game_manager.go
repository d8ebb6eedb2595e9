package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type resultsService interface {
	GetResults(ctx context.Context) (*entity.Results, error)
	RecordOutcome(ctx context.Context, outcome entity.Outcome) (*entity.Results, error)
	ResetResults(ctx context.Context) error
}

// TurnResult - the state after one round: the human move and the computer reply.
type TurnResult struct {
	Game         *entity.Game
	ComputerCell int
	Results      *entity.Results
}

type GameManager struct {
	logger      *slog.Logger
	firstPlayer string

	botService     botService
	resultsService resultsService
}

func NewGameManager(logger *slog.Logger, firstPlayer string, botService botService, resultsService resultsService) *GameManager {
	return &GameManager{
		logger:      logger,
		firstPlayer: firstPlayer,

		botService:     botService,
		resultsService: resultsService,
	}
}

// NewGame - starts a game. When the computer opens, its first move is already on the board.
func (that *GameManager) NewGame(ctx context.Context) (*TurnResult, error) {
	game := entity.NewGame(uuid.NewString(), entity.FirstTurn(that.firstPlayer))

	log := that.logger.With("method", "NewGame", "gameID", game.ID)
	log.Info("game created", "firstPlayer", that.firstPlayer)

	result := &TurnResult{Game: game, ComputerCell: -1}
	if game.Turn != entity.ComputerMark {
		return result, nil
	}

	if err := that.computerTurn(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// MakeTurn - plays the human move and, unless that ended the game, the computer reply.
// A finished game is returned together with apperror.ErrGameFinished.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.MakeTurn(entity.HumanMark, cell); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			return &TurnResult{Game: game, ComputerCell: -1}, apperror.ErrGameFinished
		}

		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("human turn", "cell", cell)

	result := &TurnResult{Game: game, ComputerCell: -1}
	if game.IsFinished() {
		return that.finishGame(ctx, result)
	}

	if err := that.computerTurn(ctx, result); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return that.finishGame(ctx, result)
	}

	return result, nil
}

func (that *GameManager) GetResults(ctx context.Context) (*entity.Results, error) {
	results, err := that.resultsService.GetResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get results: %w", err)
	}

	return results, nil
}

func (that *GameManager) ResetResults(ctx context.Context) error {
	if err := that.resultsService.ResetResults(ctx); err != nil {
		return fmt.Errorf("failed reset results: %w", err)
	}

	that.logger.Info("results reset")

	return nil
}

func (that *GameManager) computerTurn(ctx context.Context, result *TurnResult) error {
	log := that.logger.With("method", "computerTurn", "gameID", result.Game.ID)

	cell, err := that.botService.MakeTurn(result.Game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	result.ComputerCell = cell
	log.DebugContext(ctx, "computer turn", "cell", cell)

	return nil
}

// finishGame records the outcome. Stats failures are logged and do not lose the finished game.
func (that *GameManager) finishGame(ctx context.Context, result *TurnResult) (*TurnResult, error) {
	log := that.logger.With("method", "finishGame", "gameID", result.Game.ID)

	outcome := result.Game.Outcome()
	log.Info("game finished", "outcome", outcome)

	results, err := that.resultsService.RecordOutcome(ctx, outcome)
	if err != nil {
		log.Error("failed to record outcome", "error", err)
		return result, apperror.ErrGameFinished
	}

	result.Results = results

	return result, apperror.ErrGameFinished
}
