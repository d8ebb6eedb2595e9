package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var errQuit = errors.New("player quit")

type uGame interface {
	NewGame(ctx context.Context) (*usecase.TurnResult, error)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (*usecase.TurnResult, error)

	GetResults(ctx context.Context) (*entity.Results, error)
	ResetResults(ctx context.Context) error
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	renderer *Renderer
	in       io.Reader

	handlers map[string]func(ctx context.Context, game *entity.Game) error
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, renderer *Renderer) *Server {
	server := &Server{
		logger:   logger,
		uGame:    uGame,
		renderer: renderer,
		in:       in,

		handlers: make(map[string]func(context.Context, *entity.Game) error),
	}

	server.handlers["stats"] = server.handleStats
	server.handlers["reset"] = server.handleReset
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["q"] = server.handleQuit

	return server
}

// Start - runs games until the player declines a rematch, quits, input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	that.renderer.Help()

	for {
		err := that.playGame(ctx, lines)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			log.Info("console session ended", "reason", err)
			return nil
		case err != nil:
			return err
		}

		again, err := that.askPlayAgain(ctx, lines)
		if err != nil || !again {
			log.Info("console session ended")
			return nil
		}
	}
}

// playGame - one game from the empty board to a result.
func (that *Server) playGame(ctx context.Context, lines <-chan string) error {
	started, err := that.uGame.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	game := started.Game
	that.renderer.Board(game.Board)
	if started.ComputerCell >= 0 {
		that.renderer.ComputerMove(started.ComputerCell)
	}

	for game.IsOngoing() {
		that.renderer.Prompt(entity.HumanMark)

		line, err := that.readLine(ctx, lines)
		if err != nil {
			return err
		}

		input := strings.ToLower(strings.TrimSpace(line))
		if handler, ok := that.handlers[input]; ok {
			if err = handler(ctx, game); err != nil {
				return err
			}
			continue
		}

		cell, err := strconv.Atoi(input)
		if err != nil || cell < 0 || cell >= entity.BoardSize || game.Board[cell] != entity.Empty {
			that.renderer.InvalidMove()
			continue
		}

		if err = that.handleGameTurn(ctx, game, cell); err != nil {
			return err
		}
	}

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, game *entity.Game, cell int) error {
	log := that.logger.With("method", "handleGameTurn", "gameID", game.ID)

	result, err := that.uGame.MakeTurn(ctx, game, cell)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.renderer.Board(result.Game.Board)
		if result.ComputerCell >= 0 {
			that.renderer.ComputerMove(result.ComputerCell)
		}
		that.renderer.GameOver(result.Game)

		if result.Results == nil {
			that.renderer.Error("Could not save results.")
			return nil
		}
		that.renderer.Results(result.Results)

		return nil
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrInvalidCell):
		that.renderer.InvalidMove()
		return nil
	case err != nil:
		log.Error("failed to make turn", "cell", cell, "error", err)
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.renderer.Board(result.Game.Board)
	that.renderer.ComputerMove(result.ComputerCell)

	return nil
}

func (that *Server) handleStats(ctx context.Context, _ *entity.Game) error {
	results, err := that.uGame.GetResults(ctx)
	if err != nil {
		that.logger.Error("failed to get results", "error", err)
		that.renderer.Error("Could not load results.")
		return nil
	}

	that.renderer.Results(results)

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ *entity.Game) error {
	if err := that.uGame.ResetResults(ctx); err != nil {
		that.logger.Error("failed to reset results", "error", err)
		that.renderer.Error("Could not reset results.")
		return nil
	}

	that.renderer.Info("Results reset.")

	return nil
}

func (that *Server) handleHelp(_ context.Context, game *entity.Game) error {
	that.renderer.Help()
	that.renderer.Board(game.Board)

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *entity.Game) error {
	return errQuit
}

func (that *Server) askPlayAgain(ctx context.Context, lines <-chan string) (bool, error) {
	for {
		that.renderer.PlayAgain()

		line, err := that.readLine(ctx, lines)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "q", "quit":
			return false, nil
		}
	}
}

// readLines feeds input lines to the channel until input ends or ctx is done.
func (that *Server) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Server) readLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
