package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const redisTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	reader, err := readline.NewEx(&readline.Config{
		Prompt:              console.Prompt,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("could not open terminal input: %w", err)
	}

	return run(context.Background(), logger, conf, reader, reader.Stdout())
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, reader console.LineReader, out io.Writer) error {
	log := logger.With("component", "app")

	var resultRepo repository.ResultRepository
	if conf.Redis.Enabled {
		redisAddr := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			_ = reader.Close()
			return ErrAddrNotFound
		}

		connectCtx, cancel := context.WithTimeout(ctx, redisTimeout)
		redisStorage, err := storage.NewRedisStorage(connectCtx, redisAddr)
		cancel()
		if err != nil {
			_ = reader.Close()
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("recording results", "redis", redisAddr)
		resultRepo = repository.NewResultRepository(redisStorage)
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)
	session := console.NewSession(logger, reader, out, gameManager)

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			log.Info("game interrupted")
			return nil
		}

		return fmt.Errorf("game session failed: %w", err)
	}

	if resultRepo != nil {
		printStats(ctx, log, resultRepo, out)
	}

	return nil
}

func printStats(ctx context.Context, log *slog.Logger, resultRepo repository.ResultRepository, out io.Writer) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	stats, err := resultRepo.GetStats(ctx)
	if err != nil {
		log.Error("could not load stats", "error", err)
		return
	}

	fmt.Fprintf(out, "Games played: %d (X wins %d, O wins %d, draws %d)\n",
		stats.Total(), stats.WinsX, stats.WinsO, stats.Draws)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
