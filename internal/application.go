package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game until the player leaves or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	resultsRepo, closer, err := newResultsRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open results storage: %w", err)
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close results storage", "error", err)
		}
	}()

	botService, err := service.NewBotService(conf.Opponent)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	resultsService := service.NewResultsService(resultsRepo)
	gameManager := usecase.NewGameManager(logger, conf.FirstPlayer, botService, resultsService)

	log.Info("Starting console game", "opponent", conf.Opponent, "firstPlayer", conf.FirstPlayer, "results", conf.Results.Driver)

	renderer := console.NewRenderer(os.Stdout, conf.NoColor, conf.ClearScreen)
	consoleServer := console.New(logger, gameManager, os.Stdin, renderer)
	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console game finished")

	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newResultsRepository - picks the results storage by the configured driver.
func newResultsRepository(ctx context.Context, conf *config.Config) (repository.ResultsRepository, io.Closer, error) {
	switch conf.Results.Driver {
	case config.DriverFile:
		return repository.NewFileResultsRepository(conf.Results.FilePath), nopCloser{}, nil
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisResultsRepository(redisStorage.Connection), redisStorage, nil
	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteResultsRepository(sqliteStorage.Connection), sqliteStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDriver, conf.Results.Driver)
	}
}
