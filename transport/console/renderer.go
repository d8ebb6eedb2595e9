package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const clearScreenSeq = "\033[H\033[2J"

// Renderer writes the board and game messages to the terminal.
type Renderer struct {
	out         io.Writer
	clearScreen bool

	xColor     *color.Color
	oColor     *color.Color
	labelColor *color.Color
	infoColor  *color.Color
	errColor   *color.Color
}

func NewRenderer(out io.Writer, noColor, clearScreen bool) *Renderer {
	renderer := &Renderer{
		out:         out,
		clearScreen: clearScreen,

		xColor:     color.New(color.FgRed, color.Bold),
		oColor:     color.New(color.FgBlue, color.Bold),
		labelColor: color.New(color.FgHiBlack),
		infoColor:  color.New(color.FgGreen),
		errColor:   color.New(color.FgYellow),
	}

	if noColor {
		for _, c := range []*color.Color{renderer.xColor, renderer.oColor, renderer.labelColor, renderer.infoColor, renderer.errColor} {
			c.DisableColor()
		}
	}

	return renderer
}

// Board - prints the grid; empty cells show their index.
func (that *Renderer) Board(board entity.Board) {
	if that.clearScreen {
		fmt.Fprint(that.out, clearScreenSeq)
	}

	for row := range 3 {
		if row > 0 {
			fmt.Fprintln(that.out, "---|---|---")
		}

		i := row * 3
		fmt.Fprintf(that.out, " %s | %s | %s \n", that.cell(board, i), that.cell(board, i+1), that.cell(board, i+2))
	}
}

func (that *Renderer) cell(board entity.Board, i int) string {
	switch board[i] {
	case entity.MarkX:
		return that.xColor.Sprint(entity.MarkX)
	case entity.MarkO:
		return that.oColor.Sprint(entity.MarkO)
	default:
		return that.labelColor.Sprint(i)
	}
}

func (that *Renderer) Prompt(mark entity.Cell) {
	fmt.Fprintf(that.out, "Player %s, enter your move (0-8): ", mark)
}

func (that *Renderer) InvalidMove() {
	that.errColor.Fprintln(that.out, "Invalid move, try again.")
}

func (that *Renderer) ComputerMove(cell int) {
	that.infoColor.Fprintf(that.out, "Computer plays %d\n", cell)
}

// GameOver - prints the winner line of a finished game.
func (that *Renderer) GameOver(game *entity.Game) {
	switch game.Winner {
	case entity.MarkX:
		that.xColor.Fprintln(that.out, "Player X wins!")
	case entity.MarkO:
		that.oColor.Fprintln(that.out, "Player O wins!")
	default:
		that.infoColor.Fprintln(that.out, "It's a draw!")
	}
}

func (that *Renderer) Results(results *entity.Results) {
	fmt.Fprintf(that.out, "Wins: %d  Losses: %d  Ties: %d\n", results.Wins, results.Losses, results.Ties)
}

func (that *Renderer) Error(message string) {
	that.errColor.Fprintln(that.out, message)
}

func (that *Renderer) Info(message string) {
	that.infoColor.Fprintln(that.out, message)
}

func (that *Renderer) PlayAgain() {
	fmt.Fprint(that.out, "Play again? (y/n): ")
}

func (that *Renderer) Help() {
	fmt.Fprintln(that.out, "Enter a cell number 0-8 to move.")
	fmt.Fprintln(that.out, "Commands: stats, reset, help, quit")
}
