package storage

import (
	"context"
	"errors"

	"github.com/sig-0/currencytracker/storage/types"
)

var (
	// ErrAlreadySaved is returned when a second rate batch is saved in one session
	ErrAlreadySaved = errors.New("rates already saved for this session")

	// ErrNotLoaded is returned when rates are requested before a batch was saved
	ErrNotLoaded = errors.New("rates not loaded")
)

// Storage is an abstraction over the session's exchange rate data
type Storage interface {
	// SaveRates saves the fetched rate batch. A session holds exactly one batch
	SaveRates(context.Context, []*types.Rate) error

	// Rates returns the saved rate batch, in insertion order
	Rates(context.Context) ([]*types.Rate, error)
}
