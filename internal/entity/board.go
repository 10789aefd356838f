package entity

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Opponent returns the mark that moves next.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Coordinate addresses a cell with 1-based x (column from the left) and y (row from the bottom).
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RawCoordinate is a move as typed by a player, before any parsing.
type RawCoordinate struct {
	X string
	Y string
}

// Board is an n×n grid. Row 0 is the top row (y = n).
type Board [][]Mark

func NewBoard(n int) Board {
	board := make(Board, n)
	for i := range board {
		board[i] = make([]Mark, n)
	}

	return board
}

func (that Board) Size() int {
	return len(that)
}

// Cell - returns the mark at the coordinate. The coordinate must be on the board.
func (that Board) Cell(c Coordinate) Mark {
	return that[that.Size()-c.Y][c.X-1]
}

// Place - returns a copy of the board with the coordinate set to mark.
// Rows that are not touched are shared with the receiver, which is never written to.
func (that Board) Place(c Coordinate, mark Mark) Board {
	rowIdx := that.Size() - c.Y

	updated := make(Board, len(that))
	copy(updated, that)

	row := make([]Mark, len(that[rowIdx]))
	copy(row, that[rowIdx])
	row[c.X-1] = mark
	updated[rowIdx] = row

	return updated
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}
