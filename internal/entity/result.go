package entity

import "time"

// Result is the outcome of a finished game.
type Result struct {
	GameID     string                      `json:"game_id"`
	Winner     Mark                        `json:"winner"`
	Board      [BoardSize * BoardSize]Mark `json:"board"`
	Moves      int                         `json:"moves"`
	FinishedAt time.Time                   `json:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	return &Result{
		GameID:     game.ID,
		Winner:     game.Winner,
		Board:      game.Board,
		Moves:      game.Moves,
		FinishedAt: finishedAt,
	}
}

// Stats counts recorded outcomes.
type Stats struct {
	WinsX int64 `json:"wins_x"`
	WinsO int64 `json:"wins_o"`
	Draws int64 `json:"draws"`
}

func (that *Stats) Total() int64 {
	return that.WinsX + that.WinsO + that.Draws
}
