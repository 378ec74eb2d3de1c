package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/config"
	"github.com/rocketscienceinc/ninarow/internal/engine"
	"github.com/rocketscienceinc/ninarow/internal/render"
)

var (
	errEmptyPosition   = errors.New("a -position string is required")
	errBadPositionSize = errors.New("position length must be a square of a size between 3 and 6")
	errBadPositionMark = errors.New("position may only contain X, O, _ or .")
)

// Analyze prints the static evaluation and the best move for a given
// position, from the perspective of the side to move.
type Analyze struct {
	logger *slog.Logger
	conf   *config.Config

	position string
	mark     string
	depth    int
}

func NewAnalyze(logger *slog.Logger, conf *config.Config) *Analyze {
	return &Analyze{logger: logger, conf: conf}
}

func (*Analyze) Name() string     { return "analyze" }
func (*Analyze) Synopsis() string { return "Evaluate a position and show the engine's move" }
func (*Analyze) Usage() string {
	return `analyze -position XX_OO____ [-mark X] [-depth N]

Cells run left to right, top to bottom; use _ or . for an empty cell.
`
}

func (that *Analyze) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&that.position, "position", "", "position string, one character per cell")
	flags.StringVar(&that.mark, "mark", that.conf.Game.EngineMark, "side to move (X or O)")
	flags.IntVar(&that.depth, "depth", 0, "search depth; 0 picks the depth for the board size")
}

func (that *Analyze) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := parsePosition(that.position)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	depth := that.depth
	if depth <= 0 {
		depth = searchDepth(that.conf.Game, b.Size())
	}

	opponent := board.PlayerO
	if that.mark == board.PlayerO {
		opponent = board.PlayerX
	}

	eng, err := engine.New(that.mark, opponent, depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	plain := &render.Plain{}
	fmt.Println(plain.Render(b))
	fmt.Printf("side to move: %s\n", that.mark)
	fmt.Printf("static evaluation: %d\n", eng.Evaluate(b))

	move, err := eng.BestMove(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("best move: %d (row %d, column %d)\n", move, move/b.Size(), move%b.Size())

	return subcommands.ExitSuccess
}

// parsePosition - rebuilds a board from a one-character-per-cell string.
func parsePosition(position string) (*board.Board, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, errEmptyPosition
	}

	size := 0
	for n := board.MinSize; n <= board.MaxSize; n++ {
		if n*n == len(position) {
			size = n
			break
		}
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: got %d cells", errBadPositionSize, len(position))
	}

	b, err := board.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	for i, c := range position {
		switch c {
		case 'X':
			b.Set(i, board.PlayerX)
		case 'O':
			b.Set(i, board.PlayerO)
		case '_', '.':
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", errBadPositionMark, c, i)
		}
	}

	return b, nil
}
