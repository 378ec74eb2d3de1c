package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ninarow/internal/apperror"
)

func TestNew(t *testing.T) {
	t.Run("Creates an empty board for every supported size", func(t *testing.T) {
		for size := MinSize; size <= MaxSize; size++ {
			// Given: a supported size
			// When: creating a board
			b, err := New(size)

			// Then: every cell is empty
			require.NoError(t, err)
			assert.Equal(t, size, b.Size())
			assert.True(t, b.IsEmpty(0))
			assert.Len(t, b.EmptyCells(), size*size)
		}
	})

	t.Run("Rejects sizes outside the supported range", func(t *testing.T) {
		for _, size := range []int{-1, 0, 2, 7, 100} {
			// When: creating a board with an unsupported size
			_, err := New(size)

			// Then: it should fail with ErrInvalidBoardSize
			assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		}
	})
}

func TestBoard_WinLines(t *testing.T) {
	t.Run("Generates 2*size+2 lines of the right length", func(t *testing.T) {
		for size := MinSize; size <= MaxSize; size++ {
			// Given: a board of the given size
			b, err := New(size)
			require.NoError(t, err)

			// Then: rows + columns + two diagonals, each of length size
			lines := b.WinLines()
			require.Len(t, lines, 2*size+2)
			for _, line := range lines {
				assert.Len(t, line, size)
			}
		}
	})

	t.Run("Every cell belongs to its row, its column and any diagonals through it", func(t *testing.T) {
		for size := MinSize; size <= MaxSize; size++ {
			b, err := New(size)
			require.NoError(t, err)

			// When: counting line memberships per cell by enumeration
			membership := make([]int, size*size)
			for _, line := range b.WinLines() {
				for _, idx := range line {
					membership[idx]++
				}
			}

			// Then: each cell is on one row, one column, plus one per diagonal it sits on
			for idx, got := range membership {
				r, c := idx/size, idx%size

				want := 2
				if r == c {
					want++
				}
				if c == size-1-r {
					want++
				}

				assert.Equalf(t, want, got, "size %d cell %d", size, idx)
			}
		}
	})
}

func TestBoard_CheckWinner(t *testing.T) {
	newBoard := func(t *testing.T, cells ...string) *Board {
		t.Helper()
		b, err := New(3)
		require.NoError(t, err)
		for i, cell := range cells {
			b.Set(i, cell)
		}
		return b
	}

	t.Run("Returns the mark owning a completed row", func(t *testing.T) {
		// Given: X holds the top row
		b := newBoard(t,
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		)

		// Then: X wins
		assert.Equal(t, PlayerX, b.CheckWinner())
	})

	t.Run("Returns the mark owning a completed column", func(t *testing.T) {
		// Given: O holds the first column
		b := newBoard(t,
			PlayerO, PlayerX, PlayerX,
			PlayerO, PlayerX, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		)

		assert.Equal(t, PlayerO, b.CheckWinner())
	})

	t.Run("Returns the mark owning the main diagonal", func(t *testing.T) {
		b := newBoard(t,
			PlayerX, PlayerO, EmptyCell,
			PlayerO, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
		)

		assert.Equal(t, PlayerX, b.CheckWinner())
	})

	t.Run("Returns the mark owning the anti-diagonal", func(t *testing.T) {
		b := newBoard(t,
			PlayerX, PlayerX, PlayerO,
			PlayerX, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		)

		assert.Equal(t, PlayerO, b.CheckWinner())
	})

	t.Run("Returns PlayerTie only when the board is full with no winner", func(t *testing.T) {
		// Given: a full board with no uniform line
		b := newBoard(t,
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		)

		assert.Equal(t, PlayerTie, b.CheckWinner())
	})

	t.Run("Returns EmptyCell while the game continues", func(t *testing.T) {
		// Given: a board that is neither won nor full
		b := newBoard(t,
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		)

		assert.Equal(t, EmptyCell, b.CheckWinner())
	})
}

func TestBoard_SetAndRetract(t *testing.T) {
	t.Run("Retracting a simulated move restores the exact previous state", func(t *testing.T) {
		// Given: a board with a few moves on it
		b, err := New(4)
		require.NoError(t, err)
		b.Set(0, PlayerX)
		b.Set(5, PlayerO)

		before := b.Clone()

		// When: placing a mark on an empty cell and writing EmptyCell back
		b.Set(7, PlayerX)
		b.Set(7, EmptyCell)

		// Then: the board is identical to the state before the simulation
		assert.Equal(t, before, b)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		b, err := New(3)
		require.NoError(t, err)

		require.NoError(t, b.Place(4, PlayerX))
		assert.Equal(t, PlayerX, b.Get(4))
	})

	t.Run("Rejects an out-of-range cell", func(t *testing.T) {
		b, err := New(3)
		require.NoError(t, err)

		assert.ErrorIs(t, b.Place(-1, PlayerX), apperror.ErrInvalidCell)
		assert.ErrorIs(t, b.Place(9, PlayerX), apperror.ErrInvalidCell)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		b, err := New(3)
		require.NoError(t, err)
		require.NoError(t, b.Place(4, PlayerX))

		assert.ErrorIs(t, b.Place(4, PlayerO), apperror.ErrCellOccupied)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Lists free cells in ascending order", func(t *testing.T) {
		// Given: a board with scattered marks
		b, err := New(3)
		require.NoError(t, err)
		b.Set(8, PlayerX)
		b.Set(1, PlayerO)
		b.Set(4, PlayerX)

		// Then: the remaining indices come back sorted
		assert.Equal(t, []int{0, 2, 3, 5, 6, 7}, b.EmptyCells())
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Reports full only when no cell is empty", func(t *testing.T) {
		b, err := New(3)
		require.NoError(t, err)

		for i := 0; i < 8; i++ {
			b.Set(i, PlayerX)
			assert.False(t, b.IsFull(), fmt.Sprintf("cell %d just filled", i))
		}

		b.Set(8, PlayerO)
		assert.True(t, b.IsFull())
	})
}

func TestBoard_Clone(t *testing.T) {
	t.Run("Clone is independent of the original", func(t *testing.T) {
		// Given: a board and its clone
		b, err := New(3)
		require.NoError(t, err)
		b.Set(0, PlayerX)

		clone := b.Clone()

		// When: mutating the original
		b.Set(1, PlayerO)

		// Then: the clone keeps the old contents
		assert.Equal(t, PlayerX, clone.Get(0))
		assert.Equal(t, EmptyCell, clone.Get(1))
	})
}
