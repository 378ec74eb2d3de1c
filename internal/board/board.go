package board

import (
	"fmt"

	"github.com/rocketscienceinc/ninarow/internal/apperror"
)

const (
	MinSize = 3
	MaxSize = 6

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Board holds the grid state of one game together with the winning lines
// precomputed for its size. Cells are indexed left to right, top to bottom:
// index i sits at row i/size, column i%size.
type Board struct {
	size     int
	cells    []string
	winLines [][]int
}

// New - creates an empty board; size must be between MinSize and MaxSize.
func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	that := &Board{
		size:  size,
		cells: make([]string, size*size),
	}
	that.generateWinLines()

	return that, nil
}

// generateWinLines - builds the 2*size+2 lines once: rows first, then
// columns, then the two main diagonals. CheckWinner scans them in this order.
func (that *Board) generateWinLines() {
	n := that.size
	lines := make([][]int, 0, 2*n+2)

	for r := 0; r < n; r++ {
		line := make([]int, 0, n)
		for c := 0; c < n; c++ {
			line = append(line, r*n+c)
		}
		lines = append(lines, line)
	}

	for c := 0; c < n; c++ {
		line := make([]int, 0, n)
		for r := 0; r < n; r++ {
			line = append(line, r*n+c)
		}
		lines = append(lines, line)
	}

	diag := make([]int, 0, n)
	antiDiag := make([]int, 0, n)
	for i := 0; i < n; i++ {
		diag = append(diag, i*n+i)
		antiDiag = append(antiDiag, i*n+(n-1-i))
	}
	lines = append(lines, diag, antiDiag)

	that.winLines = lines
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) WinLines() [][]int {
	return that.winLines
}

func (that *Board) Get(cell int) string {
	return that.cells[cell]
}

// Set - writes a mark unconditionally. The search engine also uses it to
// retract a simulated move by writing EmptyCell back; legality is the
// caller's responsibility.
func (that *Board) Set(cell int, mark string) {
	that.cells[cell] = mark
}

func (that *Board) IsEmpty(cell int) bool {
	return that.cells[cell] == EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - lists the free indices in ascending order. The order matters:
// it fixes the tie-break for move selection downstream.
func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, i)
		}
	}

	return empty
}

// Place - validated placement used by the game driver. The search engine
// bypasses it and calls Set directly.
func (that *Board) Place(cell int, mark string) error {
	if cell < 0 || cell >= len(that.cells) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.cells[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.cells[cell] = mark

	return nil
}

// CheckWinner - returns the mark owning a completed line, PlayerTie when the
// board is full with no winner, or EmptyCell while the game continues.
func (that *Board) CheckWinner() string {
	for _, line := range that.winLines {
		first := that.cells[line[0]]
		if first == EmptyCell {
			continue
		}

		allSame := true
		for _, idx := range line[1:] {
			if that.cells[idx] != first {
				allSame = false
				break
			}
		}

		if allSame {
			return first
		}
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// Clone - returns an independent board with the same size and cell contents.
func (that *Board) Clone() *Board {
	cells := make([]string, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		size:     that.size,
		cells:    cells,
		winLines: that.winLines,
	}
}
