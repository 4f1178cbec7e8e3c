package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sig-0/currencytracker/config"
	"github.com/sig-0/currencytracker/provider/frankfurter"
	"github.com/sig-0/currencytracker/shell"
	"github.com/sig-0/currencytracker/storage/memory"
	"github.com/sig-0/currencytracker/storage/types"
)

// trackCfg wraps the tracker configuration
type trackCfg struct {
	config *config.Config

	// terminal streams, the process ones outside of tests
	in     io.Reader
	out    io.Writer
	logOut io.Writer

	configPath string
	verbose    bool
}

// newTrackCfg creates a tracker configuration bound to the process streams
func newTrackCfg() *trackCfg {
	return &trackCfg{
		config: config.DefaultConfig(),
		in:     os.Stdin,
		out:    os.Stdout,
		logOut: os.Stderr,
	}
}

func (c *trackCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.config.BaseCurrency,
		"base",
		c.config.BaseCurrency,
		"the three-letter base currency code",
	)

	fs.StringVar(
		&c.config.APIURL,
		"api-url",
		c.config.APIURL,
		"the rate API host URL",
	)

	fs.IntVar(
		&c.config.TimeoutSeconds,
		"timeout-seconds",
		c.config.TimeoutSeconds,
		"the rate API request timeout in seconds, 0 for the transport default",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the tracker TOML configuration, if any",
	)

	fs.BoolVar(
		&c.verbose,
		"verbose",
		false,
		"enables debug logging",
	)
}

func (c *trackCfg) exec(ctx context.Context, _ []string) error {
	// Read the tracker configuration, if any
	if c.configPath != "" {
		trackerCfg, err := config.Read(c.configPath)
		if err != nil {
			return fmt.Errorf("unable to read tracker config, %w", err)
		}

		c.config = trackerCfg
	}

	if err := config.ValidateConfig(c.config); err != nil {
		return fmt.Errorf("invalid configuration, %w", err)
	}

	// Standard output belongs to the menu, logs go to stderr
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.logOut, &slog.HandlerOptions{
		Level: level,
	}))

	provider := frankfurter.NewProvider(
		c.config.APIURL,
		time.Duration(c.config.TimeoutSeconds)*time.Second,
	)
	defer provider.Close()

	s := shell.New(
		provider,
		memory.NewStorage(),
		shell.WithLogger(logger),
		shell.WithInput(c.in),
		shell.WithOutput(c.out),
		shell.WithBaseCurrency(types.Currency(c.config.BaseCurrency)),
	)

	if err := s.Run(ctx); err != nil {
		if errors.Is(err, shell.ErrStartup) {
			// Already shown to the user, exit cleanly
			logger.Debug("session ended without rates", "err", err)

			return nil
		}

		return err
	}

	return nil
}
