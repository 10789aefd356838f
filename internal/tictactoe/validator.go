package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Validate - checks a raw move against the board and returns the parsed coordinate.
// Malformed and out-of-range components share one error; occupancy is checked only after both pass.
func Validate(raw entity.RawCoordinate, board entity.Board) (entity.Coordinate, error) {
	n := board.Size()

	x, okX := parseComponent(raw.X, n)
	y, okY := parseComponent(raw.Y, n)
	if !okX || !okY {
		return entity.Coordinate{}, fmt.Errorf("%w: enter two integers between 1 and %d", apperror.ErrInvalidCoordinate, n)
	}

	coord := entity.Coordinate{X: x, Y: y}
	if board.Cell(coord) != entity.EmptyCell {
		return coord, apperror.ErrCellOccupied
	}

	return coord, nil
}

func parseComponent(raw string, n int) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}

	return value, value >= 1 && value <= n
}

const DefaultMaxBoardSize = 99

// ParseBoardSize - parses the answer to the board size prompt. Sizes above maxSize are malformed.
func ParseBoardSize(answer string, maxSize int) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || size <= 0 || size > maxSize {
		return 0, fmt.Errorf("%w: please enter a positive integer up to %d", apperror.ErrMalformedSize, maxSize)
	}

	return size, nil
}
