package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/ninarow/internal/command"
	"github.com/rocketscienceinc/ninarow/internal/config"
)

// RunApp - registers the subcommands and dispatches the requested one.
// Returns the process exit code.
func RunApp(logger *slog.Logger, conf *config.Config) int {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(command.NewPlay(logger, conf), "game")
	subcommands.Register(command.NewAnalyze(logger, conf), "engine")
	subcommands.Register(command.NewSelfplay(logger, conf), "engine")

	return int(subcommands.Execute(ctx))
}
