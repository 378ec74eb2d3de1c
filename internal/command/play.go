package command

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/ninarow/internal/board"
	"github.com/rocketscienceinc/ninarow/internal/config"
	"github.com/rocketscienceinc/ninarow/internal/engine"
	"github.com/rocketscienceinc/ninarow/internal/game"
	"github.com/rocketscienceinc/ninarow/internal/player"
	"github.com/rocketscienceinc/ninarow/internal/render"
)

// Play runs an interactive game between the human at the terminal and the
// search engine.
type Play struct {
	logger *slog.Logger
	conf   *config.Config

	size  int
	seed  int64
	plain bool
}

func NewPlay(logger *slog.Logger, conf *config.Config) *Play {
	return &Play{logger: logger, conf: conf}
}

func (*Play) Name() string     { return "play" }
func (*Play) Synopsis() string { return "Play against the engine from the command line" }
func (*Play) Usage() string {
	return `play [-size N] [-seed N] [-plain]

Play an N-in-a-row game against the search engine.
`
}

func (that *Play) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&that.size, "size", that.conf.Game.BoardSize, "board size (3-6)")
	flags.Int64Var(&that.seed, "seed", that.conf.Game.Seed, "seed for the starting-player choice; 0 uses the clock")
	flags.BoolVar(&that.plain, "plain", false, "render the board without colors")
}

func (that *Play) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := board.New(that.size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	gameConf := that.conf.Game

	eng, err := engine.New(gameConf.EngineMark, gameConf.HumanMark, searchDepth(gameConf, that.size))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	human := player.NewHuman(gameConf.HumanMark, os.Stdin, os.Stdout)
	bot := player.NewBot(that.logger, gameConf.EngineMark, eng)

	var renderer game.Renderer = &render.Styled{}
	if that.plain {
		renderer = &render.Plain{}
	}

	fmt.Println(render.Banner(that.size))
	fmt.Printf("You are %q, the engine is %q\n", gameConf.HumanMark, gameConf.EngineMark)

	session := game.NewSession(that.logger, b, human, bot, renderer, os.Stdout, newRand(that.seed))

	if session.Current().Mark() == human.Mark() {
		fmt.Println("You go first!")
	} else {
		fmt.Println("Engine goes first!")
	}

	winner, err := session.Play(ctx)
	if err != nil {
		that.logger.Error("game aborted", "error", err)
		return subcommands.ExitFailure
	}

	switch winner {
	case gameConf.HumanMark:
		fmt.Println("You win!")
	case gameConf.EngineMark:
		fmt.Println("Engine wins!")
	default:
		fmt.Println("It's a draw!")
	}

	return subcommands.ExitSuccess
}
