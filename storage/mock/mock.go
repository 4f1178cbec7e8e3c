package mock

import (
	"context"

	"github.com/sig-0/currencytracker/storage/types"
)

type (
	SaveRatesDelegate func(context.Context, []*types.Rate) error
	RatesDelegate     func(context.Context) ([]*types.Rate, error)
)

type Storage struct {
	SaveRatesFn SaveRatesDelegate
	RatesFn     RatesDelegate
}

func (m *Storage) SaveRates(ctx context.Context, rates []*types.Rate) error {
	if m.SaveRatesFn != nil {
		return m.SaveRatesFn(ctx, rates)
	}

	return nil
}

func (m *Storage) Rates(ctx context.Context) ([]*types.Rate, error) {
	if m.RatesFn != nil {
		return m.RatesFn(ctx)
	}

	return nil, nil
}
