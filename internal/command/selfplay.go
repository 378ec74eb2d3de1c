package command

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/config"
	"github.com/rocketscienceinc/ninarow/internal/engine"
	"github.com/rocketscienceinc/ninarow/internal/game"
	"github.com/rocketscienceinc/ninarow/internal/player"
	"github.com/rocketscienceinc/ninarow/internal/render"
)

// Selfplay pits the engine against itself and reports the aggregate result.
// Games are independent, so they run concurrently; each one gets its own
// board and rand source derived from the base seed.
type Selfplay struct {
	logger *slog.Logger
	conf   *config.Config

	size     int
	games    int
	parallel int
	seed     int64
	depth    int
}

func NewSelfplay(logger *slog.Logger, conf *config.Config) *Selfplay {
	return &Selfplay{logger: logger, conf: conf}
}

func (*Selfplay) Name() string     { return "selfplay" }
func (*Selfplay) Synopsis() string { return "Play the engine against itself and report results" }
func (*Selfplay) Usage() string {
	return `selfplay [-games N] [-parallel N] [-size N] [-seed N] [-depth N]
`
}

func (that *Selfplay) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&that.size, "size", that.conf.Game.BoardSize, "board size (3-6)")
	flags.IntVar(&that.games, "games", 10, "number of games to play")
	flags.IntVar(&that.parallel, "parallel", 4, "games to run concurrently")
	flags.Int64Var(&that.seed, "seed", that.conf.Game.Seed, "base seed; game i uses seed+i")
	flags.IntVar(&that.depth, "depth", 0, "search depth; 0 picks the depth for the board size")
}

func (that *Selfplay) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	depth := that.depth
	if depth <= 0 {
		depth = searchDepth(that.conf.Game, that.size)
	}

	seed := that.seed
	if seed == 0 {
		seed = 1
	}

	var mu sync.Mutex
	tally := make(map[string]int)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(that.parallel)

	for i := 0; i < that.games; i++ {
		i := i
		grp.Go(func() error {
			winner, err := that.playOne(ctx, seed+int64(i), depth)
			if err != nil {
				return err
			}

			mu.Lock()
			tally[winner]++
			mu.Unlock()

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		that.logger.Error("selfplay failed", "error", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s wins:\t%d\n", board.PlayerX, tally[board.PlayerX])
	fmt.Fprintf(w, "%s wins:\t%d\n", board.PlayerO, tally[board.PlayerO])
	fmt.Fprintf(w, "draws:\t%d\n", tally[board.PlayerTie])
	w.Flush()

	return subcommands.ExitSuccess
}

func (that *Selfplay) playOne(ctx context.Context, seed int64, depth int) (string, error) {
	b, err := board.New(that.size)
	if err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}

	engX, err := engine.New(board.PlayerX, board.PlayerO, depth)
	if err != nil {
		return "", fmt.Errorf("failed to create X engine: %w", err)
	}

	engO, err := engine.New(board.PlayerO, board.PlayerX, depth)
	if err != nil {
		return "", fmt.Errorf("failed to create O engine: %w", err)
	}

	session := game.NewSession(
		that.logger,
		b,
		player.NewBot(that.logger, board.PlayerX, engX),
		player.NewBot(that.logger, board.PlayerO, engO),
		&render.Plain{},
		io.Discard,
		newRand(seed),
	)

	winner, err := session.Play(ctx)
	if err != nil {
		return "", fmt.Errorf("game failed: %w", err)
	}

	return winner, nil
}
