package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/currencytracker/cmd/env"
)

func main() {
	// Load .env, so its values are picked up as ENV variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, "unable to load .env file:", err)
	}

	cmd := newRootCommand(newTrackCfg(), flag.ExitOnError)

	if err := cmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}

// newRootCommand creates the root command running the tracker with cfg
func newRootCommand(cfg *trackCfg, handling flag.ErrorHandling) *ffcli.Command {
	fs := flag.NewFlagSet("currencytracker", handling)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		ShortUsage: "currencytracker [flags]",
		LongHelp:   "Browses the latest exchange rates for a base currency",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}
