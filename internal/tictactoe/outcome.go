package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// DetectWinner - a line is won once its tally reaches +n (X) or -n (O).
// Rows are checked first, then columns, then the two diagonals.
func DetectWinner(score entity.Score, n int) entity.Mark {
	for _, lines := range score.Lines() {
		for _, tally := range lines {
			switch tally {
			case n:
				return entity.PlayerX
			case -n:
				return entity.PlayerO
			}
		}
	}

	return entity.EmptyCell
}

func IsStalemate(board entity.Board) bool {
	return board.IsFull()
}
