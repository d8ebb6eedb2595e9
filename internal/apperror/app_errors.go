package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrNoMoveAvailable = errors.New("no move available")
	ErrUnknownOutcome  = errors.New("unknown game outcome")
	ErrUnknownOpponent = errors.New("unknown opponent type")
	ErrUnknownDriver   = errors.New("unknown results storage driver")
)
