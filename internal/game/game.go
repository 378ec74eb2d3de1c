package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/player"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Renderer draws a board; it never mutates it.
type Renderer interface {
	Render(b *board.Board) string
}

// Session drives one game between two players on a shared board. The
// starting player is picked with the injected rand source so runs are
// reproducible under a fixed seed.
type Session struct {
	logger *slog.Logger

	board    *board.Board
	players  [2]player.Player
	renderer Renderer
	out      io.Writer

	current int
	Status  string
	Winner  string
}

func NewSession(logger *slog.Logger, b *board.Board, first, second player.Player, renderer Renderer, out io.Writer, rng *rand.Rand) *Session {
	return &Session{
		logger:   logger.With("component", "game"),
		board:    b,
		players:  [2]player.Player{first, second},
		renderer: renderer,
		out:      out,
		current:  rng.Intn(2),
		Status:   StatusOngoing,
	}
}

// Current - the player holding the turn; before the first move this is the
// randomly chosen starter.
func (that *Session) Current() player.Player {
	return that.players[that.current]
}

// Play - runs the turn loop until a win or a draw and returns the result:
// the winning mark, or board.PlayerTie. The board is rendered after every
// applied move.
func (that *Session) Play(ctx context.Context) (string, error) {
	fmt.Fprintln(that.out, that.renderer.Render(that.board))

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("game interrupted: %w", err)
		}

		if result := that.board.CheckWinner(); result != board.EmptyCell {
			that.finish(result)
			return result, nil
		}

		current := that.players[that.current]

		move, err := current.PickMove(that.board)
		if err != nil {
			return "", fmt.Errorf("player %s failed to move: %w", current.Mark(), err)
		}

		if err = that.board.Place(move, current.Mark()); err != nil {
			return "", fmt.Errorf("player %s made an illegal move: %w", current.Mark(), err)
		}

		that.logger.Debug("move applied", "mark", current.Mark(), "cell", move)
		fmt.Fprintln(that.out, that.renderer.Render(that.board))

		that.current = 1 - that.current
	}
}

func (that *Session) finish(result string) {
	that.Status = StatusFinished
	that.Winner = result
	that.logger.Debug("game finished", "winner", result)
}
