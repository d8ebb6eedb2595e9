package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	errSomeError     = errors.New("some error")
	errStorageIsFull = errors.New("storage is full")
)

type mockBotService struct {
	mock.Mock
}

func (that *mockBotService) MakeTurn(game *entity.Game) (int, error) {
	args := that.Called(game)
	return args.Int(0), args.Error(1)
}

type mockResultsService struct {
	mock.Mock
}

func (that *mockResultsService) GetResults(ctx context.Context) (*entity.Results, error) {
	args := that.Called(ctx)
	results, _ := args.Get(0).(*entity.Results)
	return results, args.Error(1)
}

func (that *mockResultsService) RecordOutcome(ctx context.Context, outcome entity.Outcome) (*entity.Results, error) {
	args := that.Called(ctx, outcome)
	results, _ := args.Get(0).(*entity.Results)
	return results, args.Error(1)
}

func (that *mockResultsService) ResetResults(ctx context.Context) error {
	return that.Called(ctx).Error(0)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSmartBot(t *testing.T) service.BotService {
	t.Helper()

	bot, err := service.NewBotService(service.OpponentSmart)
	require.NoError(t, err)

	return bot
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Human opens the game", func(t *testing.T) {
		// Given: a manager where the human moves first
		mockBot := &mockBotService{}
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, mockBot, &mockResultsService{})

		// When: starting a game
		result, err := manager.NewGame(ctx)

		// Then: the board is empty and it's X's turn
		require.NoError(t, err)
		assert.NotEmpty(t, result.Game.ID)
		assert.Equal(t, entity.Board{}, result.Game.Board)
		assert.Equal(t, entity.HumanMark, result.Game.Turn)
		assert.Equal(t, -1, result.ComputerCell)
		mockBot.AssertNotCalled(t, "MakeTurn", mock.Anything)
	})

	t.Run("Computer opens the game", func(t *testing.T) {
		// Given: a manager where the computer moves first
		manager := NewGameManager(newLogger(), entity.FirstPlayerComputer, newSmartBot(t), &mockResultsService{})

		// When: starting a game
		result, err := manager.NewGame(ctx)

		// Then: the computer has already played and it's X's turn
		require.NoError(t, err)
		assert.Equal(t, 0, result.ComputerCell)
		assert.Equal(t, entity.ComputerMark, result.Game.Board[0])
		assert.Equal(t, entity.HumanMark, result.Game.Turn)
	})

	t.Run("Returns error when the opening move fails", func(t *testing.T) {
		// Given: a bot that fails
		mockBot := &mockBotService{}
		mockBot.On("MakeTurn", mock.AnythingOfType("*entity.Game")).Return(-1, errSomeError).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerComputer, mockBot, &mockResultsService{})

		// When: starting a game
		result, err := manager.NewGame(ctx)

		// Then: the error is returned
		require.ErrorIs(t, err, errSomeError)
		assert.Nil(t, result)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the human move and the computer reply", func(t *testing.T) {
		// Given: a new game against the smart bot
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, newSmartBot(t), &mockResultsService{})
		started, err := manager.NewGame(ctx)
		require.NoError(t, err)

		// When: the human takes a corner
		result, err := manager.MakeTurn(ctx, started.Game, 0)

		// Then: the computer answers with the center
		require.NoError(t, err)
		assert.Equal(t, entity.HumanMark, result.Game.Board[0])
		assert.Equal(t, 4, result.ComputerCell)
		assert.Equal(t, entity.ComputerMark, result.Game.Board[4])
		assert.Equal(t, entity.HumanMark, result.Game.Turn)
	})

	t.Run("Records a win when the human completes a line", func(t *testing.T) {
		// Given: a game where X can complete the top row
		mockBot := &mockBotService{}
		mockResults := &mockResultsService{}
		mockResults.On("RecordOutcome", ctx, entity.OutcomeWin).Return(&entity.Results{Wins: 1}, nil).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, mockBot, mockResults)

		game := entity.NewGame("g1", entity.HumanMark)
		game.Board = entity.Board{
			entity.MarkX, entity.MarkX, entity.Empty,
			entity.MarkO, entity.MarkO, entity.Empty,
			entity.Empty, entity.Empty, entity.Empty,
		}

		// When: the human plays the winning cell
		result, err := manager.MakeTurn(ctx, game, 2)

		// Then: the game is finished, recorded, and the bot never moved
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.OutcomeWin, result.Game.Outcome())
		assert.Equal(t, &entity.Results{Wins: 1}, result.Results)
		mockResults.AssertExpectations(t)
		mockBot.AssertNotCalled(t, "MakeTurn", mock.Anything)
	})

	t.Run("Records a loss when the computer completes a line", func(t *testing.T) {
		// Given: a game where O can complete the middle row and X does not block
		mockResults := &mockResultsService{}
		mockResults.On("RecordOutcome", ctx, entity.OutcomeLoss).Return(&entity.Results{Losses: 1}, nil).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, newSmartBot(t), mockResults)

		game := entity.NewGame("g1", entity.HumanMark)
		game.Board = entity.Board{
			entity.MarkX, entity.Empty, entity.Empty,
			entity.MarkO, entity.MarkO, entity.Empty,
			entity.MarkX, entity.Empty, entity.Empty,
		}

		// When: the human plays elsewhere
		result, err := manager.MakeTurn(ctx, game, 8)

		// Then: the computer wins and the loss is recorded
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, 5, result.ComputerCell)
		assert.Equal(t, entity.OutcomeLoss, result.Game.Outcome())
		mockResults.AssertExpectations(t)
	})

	t.Run("Records a tie on the last cell", func(t *testing.T) {
		// Given: a game with one empty cell that draws
		mockBot := &mockBotService{}
		mockResults := &mockResultsService{}
		mockResults.On("RecordOutcome", ctx, entity.OutcomeTie).Return(&entity.Results{Ties: 1}, nil).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, mockBot, mockResults)

		game := entity.NewGame("g1", entity.HumanMark)
		game.Board = entity.Board{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.Empty,
		}

		// When: the human fills the board
		result, err := manager.MakeTurn(ctx, game, 8)

		// Then: the tie is recorded
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, result.Game.IsTie())
		mockResults.AssertExpectations(t)
	})

	t.Run("Keeps the finished game when results cannot be saved", func(t *testing.T) {
		// Given: a results service that fails
		mockResults := &mockResultsService{}
		mockResults.On("RecordOutcome", ctx, entity.OutcomeWin).Return(nil, errStorageIsFull).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, &mockBotService{}, mockResults)

		game := entity.NewGame("g1", entity.HumanMark)
		game.Board = entity.Board{
			entity.MarkX, entity.MarkX, entity.Empty,
			entity.MarkO, entity.MarkO, entity.Empty,
			entity.Empty, entity.Empty, entity.Empty,
		}

		// When: the human wins
		result, err := manager.MakeTurn(ctx, game, 2)

		// Then: the game is still reported as finished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, result.Game.IsFinished())
		assert.Nil(t, result.Results)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a game where cell 4 is taken
		mockBot := &mockBotService{}
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, mockBot, &mockResultsService{})

		game := entity.NewGame("g1", entity.HumanMark)
		game.Board[4] = entity.MarkO

		// When: the human plays there
		result, err := manager.MakeTurn(ctx, game, 4)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Nil(t, result)
		assert.Equal(t, entity.HumanMark, game.Turn)
		mockBot.AssertNotCalled(t, "MakeTurn", mock.Anything)
	})

	t.Run("Returns ErrGameFinished for a finished game", func(t *testing.T) {
		// Given: a finished game
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, &mockBotService{}, &mockResultsService{})
		game := &entity.Game{ID: "g1", Status: entity.StatusFinished}

		// When: the human tries to play
		result, err := manager.MakeTurn(ctx, game, 0)

		// Then: ErrGameFinished is returned with the game
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, game, result.Game)
	})
}

func TestGameManager_Results(t *testing.T) {
	ctx := context.Background()

	t.Run("GetResults returns stored results", func(t *testing.T) {
		mockResults := &mockResultsService{}
		mockResults.On("GetResults", ctx).Return(&entity.Results{Wins: 2, Ties: 1}, nil).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, &mockBotService{}, mockResults)

		results, err := manager.GetResults(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, results.Total())
	})

	t.Run("GetResults wraps errors", func(t *testing.T) {
		mockResults := &mockResultsService{}
		mockResults.On("GetResults", ctx).Return(nil, errSomeError).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, &mockBotService{}, mockResults)

		results, err := manager.GetResults(ctx)

		require.ErrorIs(t, err, errSomeError)
		assert.Nil(t, results)
	})

	t.Run("ResetResults delegates to the service", func(t *testing.T) {
		mockResults := &mockResultsService{}
		mockResults.On("ResetResults", ctx).Return(nil).Once()
		manager := NewGameManager(newLogger(), entity.FirstPlayerHuman, &mockBotService{}, mockResults)

		err := manager.ResetResults(ctx)

		require.NoError(t, err)
		mockResults.AssertExpectations(t)
	})
}
