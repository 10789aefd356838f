package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - applies a raw move for the player to move and returns the next snapshot.
// Rejected moves come back as a copy of the input with only Err set; the input is never modified.
func MakeTurn(game *entity.Game, move entity.RawCoordinate) *entity.Game {
	if game.IsFinished() {
		return rejectTurn(game, apperror.ErrGameFinished)
	}

	coord, err := Validate(move, game.Board)
	if err != nil {
		return rejectTurn(game, err)
	}

	n := game.Size()
	updatedBoard := game.Board.Place(coord, game.Player)
	updatedScore := UpdateScore(coord, n, game.Player, game.Score)
	winner := DetectWinner(updatedScore, n)

	return &entity.Game{
		ID:        game.ID,
		Board:     updatedBoard,
		Player:    game.Player.Opponent(),
		Score:     updatedScore,
		Winner:    winner,
		Stalemate: winner == entity.EmptyCell && IsStalemate(updatedBoard),
	}
}

func rejectTurn(game *entity.Game, err error) *entity.Game {
	rejected := *game
	rejected.Err = err

	return &rejected
}
