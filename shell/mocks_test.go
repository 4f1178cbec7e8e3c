package shell

import (
	"context"

	"github.com/sig-0/currencytracker/storage/types"
)

type fetchDelegate func(context.Context, types.Currency) ([]*types.Rate, error)

type mockFetcher struct {
	fetchFn fetchDelegate
}

func (m *mockFetcher) Fetch(ctx context.Context, base types.Currency) ([]*types.Rate, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, base)
	}

	return nil, nil
}
