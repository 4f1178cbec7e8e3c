// Package query implements the read-only operations over a session's
// rate batch. None of the functions modify the slice they are given.
package query

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sig-0/currencytracker/storage/types"
)

// Summary is the statistical summary of a rate batch
type Summary struct {
	Min     *types.Rate     // first record holding the lowest rate
	Max     *types.Rate     // first record holding the highest rate
	Average decimal.Decimal // arithmetic mean of all rates
	Count   int
}

// ListAll returns all rates in their original order
func ListAll(rates []*types.Rate) []*types.Rate {
	return slices.Clone(rates)
}

// FindByCode returns the rates whose code matches code exactly,
// ignoring case
func FindByCode(rates []*types.Rate, code string) []*types.Rate {
	out := make([]*types.Rate, 0, 1)

	for _, r := range rates {
		if strings.EqualFold(r.Code.String(), code) {
			out = append(out, r)
		}
	}

	return out
}

// FilterAbove returns the rates strictly greater than threshold,
// highest first. Equal rates keep their original relative order
func FilterAbove(rates []*types.Rate, threshold decimal.Decimal) []*types.Rate {
	out := make([]*types.Rate, 0, len(rates))

	for _, r := range rates {
		if r.Rate.GreaterThan(threshold) {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, descending)

	return out
}

// SortAscending returns all rates sorted by rate, lowest first
func SortAscending(rates []*types.Rate) []*types.Rate {
	out := slices.Clone(rates)
	slices.SortStableFunc(out, ascending)

	return out
}

// SortDescending returns all rates sorted by rate, highest first
func SortDescending(rates []*types.Rate) []*types.Rate {
	out := slices.Clone(rates)
	slices.SortStableFunc(out, descending)

	return out
}

// Stats computes the summary of the given rates.
// Ties for min and max resolve to the earliest record
func Stats(rates []*types.Rate) (*Summary, error) {
	if len(rates) == 0 {
		return nil, types.ErrEmptyResult
	}

	var (
		minRate = rates[0]
		maxRate = rates[0]
		sum     = decimal.Zero
		scale   = int32(0)
	)

	for _, r := range rates {
		if r.Rate.LessThan(minRate.Rate) {
			minRate = r
		}

		if r.Rate.GreaterThan(maxRate.Rate) {
			maxRate = r
		}

		sum = sum.Add(r.Rate)
		scale = max(scale, -r.Rate.Exponent())
	}

	return &Summary{
		Min:     minRate,
		Max:     maxRate,
		Average: sum.DivRound(decimal.NewFromInt(int64(len(rates))), averagePrecision(scale)),
		Count:   len(rates),
	}, nil
}

// averagePrecision is the number of fractional digits kept in the mean.
// Rates finer than the default division precision keep extra digits
// beyond their own scale, so the mean never rounds below the minimum
func averagePrecision(scale int32) int32 {
	return max(int32(decimal.DivisionPrecision), scale+int32(decimal.DivisionPrecision)/2)
}

func ascending(a, b *types.Rate) int {
	return a.Rate.Cmp(b.Rate)
}

func descending(a, b *types.Rate) int {
	return b.Rate.Cmp(a.Rate)
}
