package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn applies the current player's move at row, col and evaluates the
// board. A rejected move leaves the game untouched.
func MakeTurn(gameInstance *entity.Game, row, col int) error {
	if err := gameInstance.ApplyMove(row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game) {
	switch {
	case gameInstance.CheckWin():
		gameInstance.Finish(gameInstance.Turn)
	case gameInstance.IsBoardFull():
		gameInstance.Finish(entity.PlayerTie)
	default:
		gameInstance.SwitchPlayer()
	}
}
