package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ninarow/internal/board"
)

// Human reads moves from a text stream, reprompting until the input is a
// number, in range, and points at an empty cell.
type Human struct {
	mark string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(mark string, in io.Reader, out io.Writer) *Human {
	return &Human{
		mark: mark,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (that *Human) Mark() string {
	return that.mark
}

func (that *Human) PickMove(b *board.Board) (int, error) {
	maxIndex := b.Size()*b.Size() - 1

	for {
		fmt.Fprintf(that.out, "Enter your move (0-%d): ", maxIndex)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return -1, fmt.Errorf("failed to read move: %w", err)
			}

			return -1, io.EOF
		}

		move, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
		if err != nil {
			fmt.Fprintf(that.out, "Please enter a valid number (0-%d).\n", maxIndex)
			continue
		}

		if move < 0 || move > maxIndex {
			fmt.Fprintf(that.out, "Please enter a number between 0 and %d.\n", maxIndex)
			continue
		}

		if !b.IsEmpty(move) {
			fmt.Fprintln(that.out, "Invalid move! Spot taken.")
			continue
		}

		return move, nil
	}
}
