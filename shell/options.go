package shell

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/sig-0/currencytracker/storage/types"
)

type Option func(s *Shell)

// WithLogger specifies the logger for the shell
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = l
	}
}

// WithInput specifies the source of user input.
// Defaults to os.Stdin
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.in = bufio.NewReader(r)
	}
}

// WithOutput specifies the destination of menus and results.
// Defaults to os.Stdout
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithBaseCurrency specifies the base currency the rates are fetched for
func WithBaseCurrency(base types.Currency) Option {
	return func(s *Shell) {
		s.base = base
	}
}

// WithClearScreen toggles clearing the terminal before every menu
func WithClearScreen(enabled bool) Option {
	return func(s *Shell) {
		s.clearScreen = enabled
	}
}
