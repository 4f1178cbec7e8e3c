package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/xid"

	"github.com/sig-0/currencytracker/provider/currencies"
	"github.com/sig-0/currencytracker/query"
	"github.com/sig-0/currencytracker/storage"
	"github.com/sig-0/currencytracker/storage/types"
)

const exitChoice = "0"

// ErrStartup is returned by Run when the session rates could not be loaded.
// The failure has already been shown to the user
var ErrStartup = errors.New("unable to start session")

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Fetcher fetches the latest rates for a base currency
type Fetcher interface {
	Fetch(ctx context.Context, base types.Currency) ([]*types.Rate, error)
}

// action is a single menu operation
type action func(ctx context.Context) error

// Shell is the interactive rate browsing menu
type Shell struct {
	logger *slog.Logger

	fetcher Fetcher
	storage storage.Storage

	in  *bufio.Reader
	out io.Writer

	actions map[string]action

	base        types.Currency
	clearScreen bool
}

// New creates a new shell instance
func New(fetcher Fetcher, storage storage.Storage, opts ...Option) *Shell {
	s := &Shell{
		logger:      noopLogger,
		fetcher:     fetcher,
		storage:     storage,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		base:        currencies.DefaultBase,
		clearScreen: true,
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	s.actions = map[string]action{
		"1": s.listAll,
		"2": s.searchByCode,
		"3": s.listAbove,
		"4": s.sortByRate,
		"5": s.showStats,
	}

	return s
}

// Run fetches the rates once and runs the menu loop until the user exits
// or the input ends. A failed fetch is reported to the user and returned
func (s *Shell) Run(ctx context.Context) error {
	logger := s.logger.With("session", xid.New().String())

	logger.Info("session started", "base", s.base)
	logger.Debug("fetching rates", "base", s.base)

	rates, err := s.fetcher.Fetch(ctx, s.base)
	if err != nil {
		logger.Error("unable to fetch rates", "err", err)

		s.printf("Unable to fetch data from the API: %v\n", err)
		s.printf("Press Enter to exit...\n")

		_, _ = s.readLine()

		return fmt.Errorf("%w: unable to fetch rates, %w", ErrStartup, err)
	}

	if err = s.storage.SaveRates(ctx, rates); err != nil {
		logger.Error("unable to save rates", "err", err)

		s.printf("Unable to load rates: %v\n", err)

		return fmt.Errorf("%w: unable to save rates, %w", ErrStartup, err)
	}

	logger.Info("rates loaded", "base", s.base, "count", len(rates))

	err = s.loop(ctx, logger)

	logger.Info("session ended")

	return err
}

// loop serves the menu until the user exits or the input ends
func (s *Shell) loop(ctx context.Context, logger *slog.Logger) error {
	for {
		s.clear()
		s.printf("%s\n", menuText)
		s.printf("Your choice: ")

		choice, err := s.readLine()
		if err != nil {
			return s.endOfInput(err)
		}

		if choice == exitChoice {
			s.printf("Exiting...\n")

			return nil
		}

		act, ok := s.actions[choice]
		if !ok {
			s.printf("Invalid choice!\n")
		} else if err = act(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return s.endOfInput(err)
			}

			s.report(logger, err)
		}

		if err = s.pause(); err != nil {
			return s.endOfInput(err)
		}
	}
}

// listAll prints every rate in API order
func (s *Shell) listAll(ctx context.Context) error {
	rates, err := s.storage.Rates(ctx)
	if err != nil {
		return err
	}

	s.clear()
	s.printf("=== All Currencies (Base: %s) ===\n\n", s.base)
	s.printRates(query.ListAll(rates))

	return nil
}

// searchByCode prompts for a currency code and prints the exact matches
func (s *Shell) searchByCode(ctx context.Context) error {
	s.clear()
	s.printf("Currency code to search (e.g. USD): ")

	input, err := s.readLine()
	if err != nil {
		return err
	}

	code, err := query.ParseCode(input)
	if err != nil {
		return err
	}

	rates, err := s.storage.Rates(ctx)
	if err != nil {
		return err
	}

	s.printf("\n")
	s.printRates(query.FindByCode(rates, code))

	return nil
}

// listAbove prompts for a threshold and prints the rates above it
func (s *Shell) listAbove(ctx context.Context) error {
	s.clear()
	s.printf("Enter a threshold value (e.g. 0.030): ")

	input, err := s.readLine()
	if err != nil {
		return err
	}

	threshold, err := query.ParseThreshold(input)
	if err != nil {
		return err
	}

	rates, err := s.storage.Rates(ctx)
	if err != nil {
		return err
	}

	s.printf("\nCurrencies with rate > %s:\n\n", formatDecimal(threshold))
	s.printRates(query.FilterAbove(rates, threshold))

	return nil
}

// sortByRate prompts for a direction and prints the sorted rates
func (s *Shell) sortByRate(ctx context.Context) error {
	s.clear()
	s.printf("1) Ascending\n")
	s.printf("2) Descending\n")
	s.printf("\nChoice: ")

	input, err := s.readLine()
	if err != nil {
		return err
	}

	dir, err := query.ParseDirection(input)
	if err != nil {
		return err
	}

	rates, err := s.storage.Rates(ctx)
	if err != nil {
		return err
	}

	s.printf("\n=== Sorted List ===\n\n")
	s.printRates(query.Sort(rates, dir))

	return nil
}

// showStats prints the statistical summary of the session rates
func (s *Shell) showStats(ctx context.Context) error {
	rates, err := s.storage.Rates(ctx)
	if err != nil {
		return err
	}

	summary, err := query.Stats(rates)
	if err != nil {
		return err
	}

	s.clear()
	s.printf("=== Statistical Summary ===\n\n")
	s.printf("%s", formatSummary(summary, s.base))

	return nil
}

// report prints a failed operation's error for the user
func (s *Shell) report(logger *slog.Logger, err error) {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		logger.Debug("invalid input", "field", validationErr.Field)
		s.printf("%s\n", validationErr.Message)

		return
	}

	logger.Error("operation failed", "err", err)
	s.printf("Error: %v\n", err)
}

// endOfInput ends the session once the input is exhausted
func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.printf("\nExiting...\n")

		return nil
	}

	return fmt.Errorf("unable to read input, %w", err)
}

func (s *Shell) printRates(rates []*types.Rate) {
	if len(rates) == 0 {
		s.printf("No results found.\n")

		return
	}

	for _, r := range rates {
		s.printf("%s\n", formatRate(r))
	}
}

// pause waits for the user to acknowledge the output
func (s *Shell) pause() error {
	s.printf("\nPress Enter to continue...\n")

	_, err := s.readLine()

	return err
}

// readLine reads a single trimmed line of input.
// A final line without a newline is still returned
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (s *Shell) clear() {
	if s.clearScreen {
		s.printf("%s", clearSequence)
	}
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
