package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ParseMove reads a "<row> <col>" line of 1-based coordinates and returns
// them 0-based. Range and occupancy are checked by the game itself.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 values, got %d", apperror.ErrMalformedInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrMalformedInput, fields[1])
	}

	return row - 1, col - 1, nil
}
