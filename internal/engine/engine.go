package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/rocketscienceinc/ninarow/internal/apperror"
	"github.com/rocketscienceinc/ninarow/internal/board"
)

const (
	// WinScore is returned for a position the engine has already won;
	// LossScore mirrors it for the opponent. Heuristic scores never reach
	// either constant.
	WinScore  = 1000000
	LossScore = -1000000
)

var (
	ErrSameMarks    = errors.New("engine and opponent marks must differ")
	ErrEmptyMark    = errors.New("player mark must not be empty")
	ErrInvalidDepth = errors.New("search depth must be positive")
)

// Engine picks moves with depth-bounded minimax and alpha-beta pruning. It
// mutates the board it searches, but always restores it before returning.
type Engine struct {
	mark     string
	opponent string
	maxDepth int
}

func New(mark, opponent string, maxDepth int) (*Engine, error) {
	if mark == board.EmptyCell || opponent == board.EmptyCell {
		return nil, ErrEmptyMark
	}

	if mark == opponent {
		return nil, fmt.Errorf("%w: %q", ErrSameMarks, mark)
	}

	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}

	return &Engine{
		mark:     mark,
		opponent: opponent,
		maxDepth: maxDepth,
	}, nil
}

// DepthForSize - returns the search depth used for a board size. A 3x3 game
// is solved completely; larger boards get shallow fixed bounds to keep the
// move time practical.
func DepthForSize(size int) int {
	switch size {
	case 3:
		return 100 // more plies than a 3x3 game can last
	case 4:
		return 6
	case 5:
		return 5
	case 6:
		return 4
	default:
		return 4
	}
}

// Evaluate - static score of a position, positive in the engine's favor.
// Each win line contributes independently; a line holding both marks can no
// longer be completed and contributes nothing. The defensive magnitudes are
// deliberately larger than the attacking ones so the engine prefers blocking.
func (that *Engine) Evaluate(b *board.Board) int {
	score := 0
	n := b.Size()

	for _, line := range b.WinLines() {
		myCount, oppCount := 0, 0
		for _, idx := range line {
			switch b.Get(idx) {
			case that.mark:
				myCount++
			case that.opponent:
				oppCount++
			}
		}

		if myCount > 0 && oppCount > 0 {
			continue
		}

		switch {
		case myCount == n:
			score += WinScore
		case myCount == n-1:
			score += 50000
		case myCount == n-2:
			score += 1000
		case myCount >= 2:
			score += 10
		}

		switch {
		case oppCount == n:
			score += LossScore
		case oppCount == n-1:
			score -= 55000
		case oppCount == n-2:
			score -= 2000
		case oppCount >= 2:
			score -= 20
		}
	}

	return score
}

// minimax - adversarial search with alpha-beta pruning. Terminal positions
// are scored exactly regardless of remaining depth; the heuristic only kicks
// in at the depth cutoff. Moves are tried in ascending cell order, so cutoff
// quality depends purely on index order.
func (that *Engine) minimax(b *board.Board, depth, alpha, beta int, engineTurn bool) int {
	switch b.CheckWinner() {
	case that.mark:
		return WinScore
	case that.opponent:
		return LossScore
	case board.PlayerTie:
		return 0
	}

	if depth == 0 {
		return that.Evaluate(b)
	}

	if engineTurn {
		best := math.MinInt
		for _, cell := range b.EmptyCells() {
			b.Set(cell, that.mark)
			score := that.minimax(b, depth-1, alpha, beta, false)
			b.Set(cell, board.EmptyCell)

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range b.EmptyCells() {
		b.Set(cell, that.opponent)
		score := that.minimax(b, depth-1, alpha, beta, true)
		b.Set(cell, board.EmptyCell)

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}

// BestMove - searches every free cell and returns the index with the highest
// minimax score. Ties keep the first candidate, so equal-scoring positions
// resolve to the lowest index. Calling it on a full board is a caller error.
func (that *Engine) BestMove(b *board.Board) (int, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	bestScore := math.MinInt
	bestMove := -1

	for _, cell := range empty {
		b.Set(cell, that.mark)
		score := that.minimax(b, that.maxDepth, math.MinInt, math.MaxInt, false)
		b.Set(cell, board.EmptyCell)

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove, nil
}

func (that *Engine) Mark() string {
	return that.mark
}
