package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove covers every rejected move; the console re-prompts on it.
	ErrInvalidMove = errors.New("invalid move")

	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell    = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrInvalidMove)

	ErrGameFinished = errors.New("game is already finished")
	ErrInputClosed  = errors.New("input stream closed")
)
