package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		// When: creating an n×n board
		board := NewBoard(n)

		// Then: it has n rows of n empty cells
		require.Len(t, board, n)
		for _, row := range board {
			require.Len(t, row, n)
			for _, cell := range row {
				assert.Equal(t, EmptyCell, cell)
			}
		}
		assert.False(t, board.IsFull())
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Row is counted from the bottom", func(t *testing.T) {
		// Given: an empty 3×3 board
		board := NewBoard(3)

		// When: X is placed at (3,1)
		updated := board.Place(Coordinate{X: 3, Y: 1}, PlayerX)

		// Then: the mark is in row n-y, column x-1 and nowhere else
		for r, row := range updated {
			for c, cell := range row {
				if r == 2 && c == 2 {
					assert.Equal(t, PlayerX, cell)
					continue
				}
				assert.Equal(t, EmptyCell, cell)
			}
		}
		assert.Equal(t, PlayerX, updated.Cell(Coordinate{X: 3, Y: 1}))
	})

	t.Run("Receiver is not modified", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard(2).Place(Coordinate{X: 1, Y: 2}, PlayerO)

		// When: another mark is placed on the same row
		updated := board.Place(Coordinate{X: 2, Y: 2}, PlayerX)

		// Then: the earlier board still shows a single mark
		assert.Equal(t, Board{{PlayerO, EmptyCell}, {EmptyCell, EmptyCell}}, board)
		assert.Equal(t, Board{{PlayerO, PlayerX}, {EmptyCell, EmptyCell}}, updated)
	})
}

func TestGame_Status(t *testing.T) {
	t.Run("New game is ongoing with X to move", func(t *testing.T) {
		game := NewGame("123", 3)

		assert.Equal(t, StatusOngoing, game.Status())
		assert.Equal(t, PlayerX, game.Player)
		assert.Equal(t, []int{0, 0, 0}, game.Score.Horizontal)
		assert.False(t, game.IsFinished())
	})

	t.Run("Error status while the round continues", func(t *testing.T) {
		game := &Game{Err: errors.New("boom")}

		assert.Equal(t, StatusError, game.Status())
		assert.False(t, game.IsFinished())
	})

	t.Run("Winner and stalemate are terminal", func(t *testing.T) {
		won := &Game{Winner: PlayerO}
		stalemate := &Game{Stalemate: true}

		assert.Equal(t, StatusWon, won.Status())
		assert.True(t, won.IsFinished())
		assert.Equal(t, StatusStalemate, stalemate.Status())
		assert.True(t, stalemate.IsFinished())
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}
