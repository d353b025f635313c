package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type uGame interface {
	Game() *entity.Game
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, error)
}

// Session drives one game from the first prompt to a win or a draw.
type Session struct {
	logger *slog.Logger
	reader LineReader
	out    io.Writer
	uGame  uGame
}

func NewSession(logger *slog.Logger, reader LineReader, out io.Writer, uGame uGame) *Session {
	return &Session{
		logger: logger.With("component", "console"),
		reader: reader,
		out:    out,
		uGame:  uGame,
	}
}

// Run plays turns until the game is finished. The reader is closed on return.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer func() {
		if err := that.reader.Close(); err != nil {
			log.Error("could not close input reader", "error", err)
		}
	}()

	that.reader.SetPrompt(Prompt)

	game := that.uGame.Game()
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session canceled: %w", err)
		}

		that.display(game)

		var err error
		if game, err = that.playTurn(ctx); err != nil {
			return err
		}
	}

	that.display(game)
	fmt.Fprintln(that.out, OutcomeMessage(game))

	return nil
}

// playTurn reads lines until one is accepted as a move.
func (that *Session) playTurn(ctx context.Context) (*entity.Game, error) {
	for {
		line, err := that.reader.Readline()
		if err != nil {
			return nil, readError(err)
		}

		row, col, err := ParseMove(line)
		if err == nil {
			var game *entity.Game
			if game, err = that.uGame.MakeTurn(ctx, row, col); err == nil {
				return game, nil
			}
		}

		if !errors.Is(err, apperror.ErrInvalidMove) {
			return nil, fmt.Errorf("failed to play turn: %w", err)
		}

		that.logger.Debug("invalid move", "input", line, "error", err)
		fmt.Fprintln(that.out, InvalidMoveMessage)
	}
}

func (that *Session) display(game *entity.Game) {
	fmt.Fprint(that.out, clearScreen+RenderBoard(game))
}

func readError(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return apperror.ErrInputClosed
	case errors.Is(err, readline.ErrInterrupt):
		return fmt.Errorf("input interrupted: %w", err)
	default:
		return fmt.Errorf("failed to read input: %w", err)
	}
}
