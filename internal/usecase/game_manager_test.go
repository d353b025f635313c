package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func newTestManager(repo resultRepo) *GameManager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, repo)
	manager.now = func() time.Time {
		return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	}
	return manager
}

func playWin(t *testing.T, manager *GameManager) *entity.Game {
	t.Helper()

	var (
		game *entity.Game
		err  error
	)
	for _, m := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}} {
		game, err = manager.MakeTurn(context.Background(), m[0], m[1])
		require.NoError(t, err)
	}
	return game
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Starts with an empty board and X to move", func(t *testing.T) {
		// Given: a new manager
		manager := newTestManager(nil)

		// Then: the session game is fresh
		game := manager.Game()
		assert.True(t, game.IsOngoing())
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Empty(t, game.Moves)
	})

	t.Run("Accepted move switches the player", func(t *testing.T) {
		// Given: a manager without recorder
		manager := newTestManager(nil)

		// When: X plays the centre
		game, err := manager.MakeTurn(context.Background(), 1, 1)

		// Then: O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, entity.PlayerX, game.Cell(1, 1))
	})

	t.Run("Rejected move returns ErrInvalidMove", func(t *testing.T) {
		// Given: a manager whose recorder must never be called
		repo := &mockResultRepo{}
		manager := newTestManager(repo)

		// When: a move outside the board is made
		game, err := manager.MakeTurn(context.Background(), 3, 3)

		// Then: the move is rejected and the game is untouched
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Zero(t, game.Moves)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Finished game is recorded", func(t *testing.T) {
		// Given: a recorder expecting X's win
		repo := &mockResultRepo{}
		manager := newTestManager(repo)

		repo.On("Save", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Winner == entity.PlayerX &&
				result.Moves == 5 &&
				result.GameID == manager.Game().ID &&
				result.FinishedAt.Equal(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))
		})).Return(nil).Once()

		// When: X completes the top row
		game := playWin(t, manager)

		// Then: the game is finished and the result was saved once
		assert.True(t, game.IsFinished())
		repo.AssertExpectations(t)
	})

	t.Run("Recorder failure does not affect the game", func(t *testing.T) {
		// Given: a recorder that fails
		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(errRedisDown).Once()
		manager := newTestManager(repo)

		// When: X wins
		game := playWin(t, manager)

		// Then: the win stands and no error reaches the caller
		assert.Equal(t, entity.PlayerX, game.Winner)
		repo.AssertExpectations(t)
	})

	t.Run("Move after the end is rejected", func(t *testing.T) {
		// Given: a finished game
		manager := newTestManager(nil)
		playWin(t, manager)

		// When: another move is made
		_, err := manager.MakeTurn(context.Background(), 2, 0)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
