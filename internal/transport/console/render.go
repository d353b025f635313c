package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	Prompt             = `Enter your move (row[1-3] col[1-3], e.g., "1 2"): `
	InvalidMoveMessage = "Invalid move! Try again."
	DrawMessage        = "It's a draw!"

	// clearScreen moves the cursor home and erases the display.
	clearScreen = "\033[H\033[2J"

	rowSeparator = "-----------"
)

// RenderBoard draws the grid followed by the line naming the player to move.
func RenderBoard(game *entity.Game) string {
	var sb strings.Builder

	sb.WriteString("Current board:\n")
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			fmt.Fprintf(&sb, " %s ", game.Cell(row, col))
			if col < entity.BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	fmt.Fprintf(&sb, "\nPlayer %s's turn\n", game.Turn)

	return sb.String()
}

// OutcomeMessage announces the end of a finished game.
func OutcomeMessage(game *entity.Game) string {
	if game.IsDraw() {
		return DrawMessage
	}
	return fmt.Sprintf("Player %s wins!", game.Winner)
}
