package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// Results - win/loss/tie counters of the human player across sessions.
type Results struct {
	Wins   int `json:"wins"   db:"wins"`
	Losses int `json:"losses" db:"losses"`
	Ties   int `json:"ties"   db:"ties"`
}

func (that *Results) Record(outcome Outcome) error {
	switch outcome {
	case OutcomeWin:
		that.Wins++
	case OutcomeLoss:
		that.Losses++
	case OutcomeTie:
		that.Ties++
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownOutcome, outcome)
	}

	return nil
}

func (that *Results) Total() int {
	return that.Wins + that.Losses + that.Ties
}
