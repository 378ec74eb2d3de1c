package player

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/engine"
)

// Bot defers to the search engine for its moves.
type Bot struct {
	logger *slog.Logger
	mark   string
	engine *engine.Engine
}

func NewBot(logger *slog.Logger, mark string, eng *engine.Engine) *Bot {
	return &Bot{
		logger: logger.With("component", "bot"),
		mark:   mark,
		engine: eng,
	}
}

func (that *Bot) Mark() string {
	return that.mark
}

func (that *Bot) PickMove(b *board.Board) (int, error) {
	that.logger.Debug("searching for a move", "mark", that.mark, "empty_cells", len(b.EmptyCells()))

	move, err := that.engine.BestMove(b)
	if err != nil {
		return -1, fmt.Errorf("bot failed to pick a move: %w", err)
	}

	return move, nil
}
