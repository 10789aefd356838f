package apperror

import "errors"

var (
	ErrMalformedSize     = errors.New("invalid board size")
	ErrInvalidCoordinate = errors.New("invalid integer")
	ErrCellOccupied      = errors.New("square already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
)
