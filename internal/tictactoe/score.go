package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// UpdateScore - returns the tallies after player marks c on an n×n board. The input score is left untouched.
func UpdateScore(c entity.Coordinate, n int, player entity.Mark, score entity.Score) entity.Score {
	delta := changeValue(player)

	updated := entity.Score{
		Horizontal: append([]int(nil), score.Horizontal...),
		Vertical:   append([]int(nil), score.Vertical...),
		Diagonal:   score.Diagonal,
	}

	updated.Horizontal[c.Y-1] += delta
	updated.Vertical[c.X-1] += delta

	if c.Y == c.X {
		updated.Diagonal[entity.MainDiagonal] += delta
	}

	if c.Y == -c.X+n+1 {
		updated.Diagonal[entity.AntiDiagonal] += delta
	}

	return updated
}

func changeValue(player entity.Mark) int {
	if player == entity.PlayerX {
		return 1
	}
	return -1
}
