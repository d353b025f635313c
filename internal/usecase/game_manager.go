package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const recordTimeout = 3 * time.Second

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

// GameManager owns the game of a single console session.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	game *entity.Game
	now  func() time.Time
}

// NewGameManager starts a fresh game. resultRepo may be nil, in which case
// finished games are not recorded.
func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		game:       entity.NewGame(),
		now:        time.Now,
	}
}

// Game exposes the session game for rendering.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID)

	player := that.game.Turn
	if err := tictactoe.MakeTurn(that.game, row, col); err != nil {
		log.Debug("move rejected", "player", player, "row", row, "col", col, "error", err)
		return that.game, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move accepted", "player", player, "row", row, "col", col)

	if that.game.IsFinished() {
		log.Info("game finished", "winner", that.game.Winner, "moves", that.game.Moves)
		that.recordResult(ctx)
	}

	return that.game, nil
}

func (that *GameManager) recordResult(ctx context.Context) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "gameID", that.game.ID)

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := that.resultRepo.Save(ctx, entity.NewResult(that.game, that.now())); err != nil {
		log.Error("failed to record result", "error", err)
	}
}
