package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	BoardSize = 3
)

// WinCombos lists the 8 lines as row-major board indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	ID     string                      `json:"id"`
	Board  [BoardSize * BoardSize]Mark `json:"board"`
	Winner Mark                        `json:"winner"`
	Status string                      `json:"status"`
	Turn   Mark                        `json:"player_turn"`
	Moves  int                         `json:"moves"`
}

func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Cell returns the mark at row, col. Out-of-range coordinates read as empty.
func (that *Game) Cell(row, col int) Mark {
	if !inRange(row, col) {
		return EmptyCell
	}
	return that.Board[row*BoardSize+col]
}

// ApplyMove puts the current player's mark on an empty cell. It neither
// switches the turn nor evaluates the board.
func (that *Game) ApplyMove(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !inRange(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	cell := row*BoardSize + col
	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = that.Turn
	that.Moves++

	return nil
}

// CheckWin reports whether any line holds three identical marks. All 8 lines
// are scanned every time.
func (that *Game) CheckWin() bool {
	won := false
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			won = true
		}
	}

	return won
}

func (that *Game) IsBoardFull() bool {
	return lo.EveryBy(that.Board[:], func(cell Mark) bool {
		return cell != EmptyCell
	})
}

func (that *Game) SwitchPlayer() {
	that.Turn = that.Turn.Opponent()
}

// EmptyCells returns the row-major indexes that are still free.
func (that *Game) EmptyCells() []int {
	return lo.FilterMap(that.Board[:], func(cell Mark, i int) (int, bool) {
		return i, cell == EmptyCell
	})
}

// Finish marks the game terminal. winner is PlayerX, PlayerO or PlayerTie.
func (that *Game) Finish(winner Mark) {
	that.Winner = winner
	that.Status = StatusFinished
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func inRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
