package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	OpponentRandom = "random"
	OpponentSmart  = "smart"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// NewBotService - returns the computer opponent for the configured mode.
func NewBotService(opponent string) (BotService, error) {
	switch opponent {
	case OpponentRandom:
		return &randomBot{intn: rand.Intn}, nil
	case OpponentSmart:
		return &smartBot{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownOpponent, opponent)
	}
}

// randomBot picks a uniformly random empty cell.
type randomBot struct {
	intn func(n int) int
}

func (that *randomBot) MakeTurn(game *entity.Game) (int, error) {
	availableCells := game.Board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoMoveAvailable
	}

	chosenCell := availableCells[that.intn(len(availableCells))]

	if err := game.MakeTurn(entity.ComputerMark, chosenCell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}

// smartBot plays the minimax move.
type smartBot struct{}

func (that *smartBot) MakeTurn(game *entity.Game) (int, error) {
	chosenCell, err := tictactoe.BestMove(game.Board)
	if err != nil {
		return -1, fmt.Errorf("failed to find best move: %w", err)
	}

	if err = game.MakeTurn(entity.ComputerMark, chosenCell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}
