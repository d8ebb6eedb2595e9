package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	ScoreLoss = -1
	ScoreDraw = 0
	ScoreWin  = 1
)

// Minimax - scores board for the computer (O, maximizing) with the opponent (X) minimizing.
// isMaximizing tells whose move it is now. A completed line belongs to the previous mover,
// so it scores ScoreLoss when the maximizer is to move and ScoreWin otherwise.
// The search is exhaustive: no pruning, no depth weighting.
func Minimax(board entity.Board, isMaximizing bool) int {
	if board.HasWin() {
		if isMaximizing {
			return ScoreLoss
		}
		return ScoreWin
	}

	if board.IsFull() {
		return ScoreDraw
	}

	mark := entity.HumanMark
	bestScore := math.MaxInt
	if isMaximizing {
		mark = entity.ComputerMark
		bestScore = math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = mark

		score := Minimax(next, !isMaximizing)
		if isMaximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}

// BestMove - returns the optimal cell for the computer.
// Among equally scored cells the lowest index wins, except that a cell completing
// a computer line is taken at once.
func BestMove(board entity.Board) (int, error) {
	bestMove := -1
	bestScore := math.MinInt

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = entity.ComputerMark

		if next.IsWinner(entity.ComputerMark) {
			return cell, nil
		}

		if score := Minimax(next, false); score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove == -1 {
		return -1, apperror.ErrNoMoveAvailable
	}

	return bestMove, nil
}
