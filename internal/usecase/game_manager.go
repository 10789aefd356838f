package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - drives one round at a time through the engine and keeps the live snapshot in the repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game-manager"),
		gameRepo: gameRepo,
	}
}

// NewGame - starts a round on an empty size×size board with X to move.
func (that *GameManager) NewGame(ctx context.Context, size int) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), size)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "size", size)

	return game, nil
}

// MakeTurn - applies a move to the stored round. Rejected moves are reported through Game.Err
// and leave the stored snapshot as it was; the returned error is for storage failures only.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, move entity.RawCoordinate) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	next := tictactoe.MakeTurn(game, move)
	if next.Err != nil {
		log.Debug("move rejected", "player", game.Player, "x", move.X, "y", move.Y, "error", next.Err)

		return next, nil
	}

	log.Debug("move accepted", "player", game.Player, "x", move.X, "y", move.Y)

	if next.IsFinished() {
		log.Info("game finished", "status", next.Status(), "winner", next.Winner)
		that.deleteGame(ctx, next.ID)

		return next, nil
	}

	if err = that.updateGame(ctx, next); err != nil {
		return nil, err
	}

	return next, nil
}

// AbandonGame - drops a round that will not be finished.
func (that *GameManager) AbandonGame(ctx context.Context, gameID string) {
	that.logger.Info("game abandoned", "gameID", gameID)
	that.deleteGame(ctx, gameID)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "deleteGame", "gameID", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Debug("game deleted")
}
