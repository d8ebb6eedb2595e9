package entity

// Cell is the state of a single board square.
type Cell int

const (
	Empty Cell = iota
	MarkX
	MarkO
)

const BoardSize = 9

// WinCombos - all rows, columns and diagonals that win the game.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Board - the 3x3 grid in row-major order:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Board [BoardSize]Cell

// HasWin reports whether any line holds three identical marks.
// Three empty cells never count as a line.
func (that Board) HasWin() bool {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return true
		}
	}

	return false
}

// IsWinner reports whether mark owns a complete line.
func (that Board) IsWinner(mark Cell) bool {
	if mark == Empty {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Winner returns the mark of the first complete line, or Empty.
func (that Board) Winner() Cell {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// EmptyCells returns the indexes of unplayed cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}
