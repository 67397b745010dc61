package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Dan9191/unidash/internal/app"
	"github.com/Dan9191/unidash/internal/cli"
	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/repository"
	"github.com/Dan9191/unidash/internal/service"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/storage"
	"github.com/google/subcommands"
)

var identity = flag.String("as", session.LocalIdentity, "Identity whose data the command reads and writes.")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	env := &cli.Env{Out: os.Stdout, Err: os.Stderr}
	cli.Register(commander, env)
	flag.Parse()

	logger := app.NewLogger("warn")
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open storage: %v", err)
	}

	repo := repository.NewRepository(storage.NewShim(store, logger), cfg.WeatherCity)
	env.Svc = service.NewService(repo, logger, cfg, nil, nil)
	env.Session = session.Session{Identity: *identity}

	status := commander.Execute(ctx)
	store.Close()
	os.Exit(int(status))
}
