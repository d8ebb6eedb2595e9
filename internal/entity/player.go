package entity

// Roles are fixed: the human plays X and minimizes, the computer plays O and maximizes.
const (
	HumanMark    = MarkX
	ComputerMark = MarkO
)

const (
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"
)

// FirstTurn - returns the mark that opens the game.
func FirstTurn(firstPlayer string) Cell {
	if firstPlayer == FirstPlayerComputer {
		return ComputerMark
	}
	return HumanMark
}
