package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestParseMove(t *testing.T) {
	t.Run("Translates 1-based input", func(t *testing.T) {
		cases := []struct {
			line     string
			row, col int
		}{
			{"1 1", 0, 0},
			{"1 2", 0, 1},
			{"3 3", 2, 2},
			{"  2\t3  ", 1, 2},
			{"4 4", 3, 3},
			{"0 1", -1, 0},
		}

		for _, tc := range cases {
			// When: the line is parsed
			row, col, err := ParseMove(tc.line)

			// Then: the 0-based coordinates are returned
			require.NoError(t, err, tc.line)
			assert.Equal(t, tc.row, row, tc.line)
			assert.Equal(t, tc.col, col, tc.line)
		}
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		lines := []string{
			"",
			"   ",
			"1",
			"1 2 3",
			"a b",
			"1 b",
			"x 2",
			"1,2",
			`"1 2"`,
			"1.5 2",
		}

		for _, line := range lines {
			// When: the line is parsed
			_, _, err := ParseMove(line)

			// Then: it is an invalid move
			require.ErrorIs(t, err, apperror.ErrMalformedInput, line)
			require.ErrorIs(t, err, apperror.ErrInvalidMove, line)
		}
	})
}
