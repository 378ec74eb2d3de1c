package player

import "github.com/rocketscienceinc/ninarow/internal/board"

// Player produces one legal move for the mark it holds. The game driver
// trusts the returned index: every implementation must only return an index
// of an empty cell.
type Player interface {
	Mark() string
	PickMove(b *board.Board) (int, error)
}
