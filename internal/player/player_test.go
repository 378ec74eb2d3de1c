package player

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ninarow/internal/apperror"
	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/engine"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHuman_PickMove(t *testing.T) {
	t.Run("Accepts a valid move on the first try", func(t *testing.T) {
		// Given: an empty board and a valid index on input
		b, err := board.New(3)
		require.NoError(t, err)

		var out bytes.Buffer
		human := NewHuman(board.PlayerO, strings.NewReader("4\n"), &out)

		// When: asking for a move
		move, err := human.PickMove(b)

		// Then: the index is returned and a single prompt was written
		require.NoError(t, err)
		assert.Equal(t, 4, move)
		assert.Equal(t, 1, strings.Count(out.String(), "Enter your move"))
	})

	t.Run("Reprompts on non-numeric, out-of-range and occupied input", func(t *testing.T) {
		// Given: a board with cell 0 taken and a stream of bad attempts
		b, err := board.New(3)
		require.NoError(t, err)
		b.Set(0, board.PlayerX)

		var out bytes.Buffer
		human := NewHuman(board.PlayerO, strings.NewReader("abc\n42\n-1\n0\n5\n"), &out)

		// When: asking for a move
		move, err := human.PickMove(b)

		// Then: only the last, legal index is returned
		require.NoError(t, err)
		assert.Equal(t, 5, move)
		assert.Contains(t, out.String(), "Please enter a valid number")
		assert.Contains(t, out.String(), "Please enter a number between")
		assert.Contains(t, out.String(), "Spot taken")
	})

	t.Run("Returns EOF when the input ends", func(t *testing.T) {
		b, err := board.New(3)
		require.NoError(t, err)

		human := NewHuman(board.PlayerO, strings.NewReader(""), io.Discard)

		_, err = human.PickMove(b)

		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestBot_PickMove(t *testing.T) {
	t.Run("Returns the engine's move", func(t *testing.T) {
		// Given: a position with an immediate win for X at cell 2
		b, err := board.New(3)
		require.NoError(t, err)
		b.Set(0, board.PlayerX)
		b.Set(1, board.PlayerX)
		b.Set(3, board.PlayerO)
		b.Set(4, board.PlayerO)

		eng, err := engine.New(board.PlayerX, board.PlayerO, engine.DepthForSize(3))
		require.NoError(t, err)

		bot := NewBot(discardLogger(), board.PlayerX, eng)

		// When: asking the bot for a move
		move, err := bot.PickMove(b)

		// Then: it plays the winning cell
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		b, err := board.New(3)
		require.NoError(t, err)
		for i := 0; i < 9; i++ {
			mark := board.PlayerX
			if i%2 == 1 {
				mark = board.PlayerO
			}
			b.Set(i, mark)
		}

		eng, err := engine.New(board.PlayerX, board.PlayerO, engine.DepthForSize(3))
		require.NoError(t, err)

		bot := NewBot(discardLogger(), board.PlayerX, eng)

		_, err = bot.PickMove(b)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
