package memory

import (
	"context"

	"github.com/sig-0/currencytracker/storage"
	"github.com/sig-0/currencytracker/storage/types"
)

// Storage keeps the session rate batch in memory.
// It is written once at startup and read-only afterwards
type Storage struct {
	data []types.Rate

	loaded bool
}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) SaveRates(_ context.Context, rates []*types.Rate) error {
	if s.loaded {
		return storage.ErrAlreadySaved
	}

	if len(rates) == 0 {
		return types.ErrEmptyResult
	}

	data := make([]types.Rate, 0, len(rates))

	for _, r := range rates {
		data = append(data, *r) // copy, the caller keeps its slice
	}

	s.data = data
	s.loaded = true

	return nil
}

func (s *Storage) Rates(_ context.Context) ([]*types.Rate, error) {
	if !s.loaded {
		return nil, storage.ErrNotLoaded
	}

	out := make([]*types.Rate, 0, len(s.data))

	for _, v := range s.data {
		cp := v
		out = append(out, &cp)
	}

	return out, nil
}
