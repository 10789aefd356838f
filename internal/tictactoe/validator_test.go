package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestValidate(t *testing.T) {
	t.Run("Returns parsed coordinate", func(t *testing.T) {
		// Given: an empty 3×3 board
		board := entity.NewBoard(3)

		// When: validating a move with surrounding spaces
		coord, err := Validate(move(" 3", "1 "), board)

		// Then: the coordinate is parsed
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{X: 3, Y: 1}, coord)
	})

	t.Run("Invalid coordinate wins over occupied square", func(t *testing.T) {
		// Given: a board where (1,1) is taken
		board := entity.NewBoard(3).Place(entity.Coordinate{X: 1, Y: 1}, entity.PlayerX)

		// When: validating a move with one malformed component
		_, err := Validate(move("1", "one"), board)

		// Then: only the invalid coordinate error is reported
		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.NotErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Non-integer numerals are invalid coordinates", func(t *testing.T) {
		// Given: an empty 3×3 board
		board := entity.NewBoard(3)

		for _, component := range []string{"2.0", "2e0", "1.5"} {
			// When: validating a move with a numeral that is not a plain integer
			_, err := Validate(move(component, "1"), board)

			// Then: ErrInvalidCoordinate is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate, component)
		}
	})

	t.Run("Rejection is repeatable", func(t *testing.T) {
		// Given: a board where (2,3) is taken
		board := entity.NewBoard(3).Place(entity.Coordinate{X: 2, Y: 3}, entity.PlayerO)

		// When: validating the same move twice
		_, first := Validate(move("2", "3"), board)
		_, second := Validate(move("2", "3"), board)

		// Then: both attempts report ErrCellOccupied
		assert.ErrorIs(t, first, apperror.ErrCellOccupied)
		assert.ErrorIs(t, second, apperror.ErrCellOccupied)
	})
}

func TestParseBoardSize(t *testing.T) {
	t.Run("Accepts positive integers", func(t *testing.T) {
		for answer, expected := range map[string]int{"3": 3, " 5\n": 5, "1": 1, "99": 99} {
			// When: parsing the answer
			size, err := ParseBoardSize(answer, DefaultMaxBoardSize)

			// Then: the size is returned
			require.NoError(t, err)
			assert.Equal(t, expected, size)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, answer := range []string{"", "0", "-2", "3.5", "2.0", "2e0", "three", "3x"} {
			// When: parsing the answer
			_, err := ParseBoardSize(answer, DefaultMaxBoardSize)

			// Then: ErrMalformedSize is returned
			assert.ErrorIs(t, err, apperror.ErrMalformedSize, answer)
		}
	})

	t.Run("Rejects sizes above the limit", func(t *testing.T) {
		for _, answer := range []string{"100", "100000", "9223372036854775807", "9223372036854775808"} {
			// When: parsing an answer larger than the limit
			_, err := ParseBoardSize(answer, DefaultMaxBoardSize)

			// Then: ErrMalformedSize names the limit
			require.ErrorIs(t, err, apperror.ErrMalformedSize, answer)
			assert.Contains(t, err.Error(), "up to 99")
		}
	})

	t.Run("Limit is configurable", func(t *testing.T) {
		// When: parsing with a limit of 4
		size, err := ParseBoardSize("4", 4)
		_, tooLarge := ParseBoardSize("5", 4)

		// Then: 4 is accepted and 5 is rejected
		require.NoError(t, err)
		assert.Equal(t, 4, size)
		assert.ErrorIs(t, tooLarge, apperror.ErrMalformedSize)
	})
}
