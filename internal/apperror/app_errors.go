package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size must be between 3 and 6")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
)
