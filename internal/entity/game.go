package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Game struct {
	ID     string
	Board  Board
	Winner Cell
	Status string
	Turn   Cell
}

func NewGame(id string, firstTurn Cell) *Game {
	return &Game{
		ID:     id,
		Turn:   firstTurn,
		Status: StatusOngoing,
	}
}

// UpdateGameState - finishes the game on a win or a full board.
func (that *Game) UpdateGameState() {
	switch {
	// one player wins
	case that.Board.HasWin():
		that.Winner = that.Board.Winner()
		that.Status = StatusFinished
		that.Turn = Empty
	// tie
	case that.Board.IsFull():
		that.Winner = Empty
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Cell, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == Empty
}

// Outcome - result of a finished game for the human player. Empty string while ongoing.
func (that *Game) Outcome() Outcome {
	switch {
	case !that.IsFinished():
		return ""
	case that.Winner == HumanMark:
		return OutcomeWin
	case that.Winner == ComputerMark:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}
