package query

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sig-0/currencytracker/storage/types"
)

// Direction is the sort direction selected by the user
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseCode trims the currency code query and rejects blank input
func ParseCode(input string) (string, error) {
	code := strings.TrimSpace(input)
	if code == "" {
		return "", types.NewValidationError("code", "Code cannot be empty.")
	}

	return code, nil
}

// ParseThreshold parses the threshold query as a decimal.
// The decimal separator is always '.', regardless of the host locale.
// Values outside the rate range are rejected like any other invalid number
func ParseThreshold(input string) (decimal.Decimal, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return decimal.Zero, types.NewValidationError("threshold", "Invalid number!")
	}

	threshold, err := types.ParseDecimal(text)
	if err != nil {
		return decimal.Zero, types.NewValidationError("threshold", "Invalid number!")
	}

	return threshold, nil
}

// ParseDirection maps the sort menu selection to a Direction
func ParseDirection(input string) (Direction, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return Ascending, nil
	case "2":
		return Descending, nil
	default:
		return 0, types.NewValidationError("direction", "Invalid choice!")
	}
}

// Sort sorts the rates in the given direction
func Sort(rates []*types.Rate, dir Direction) []*types.Rate {
	if dir == Descending {
		return SortDescending(rates)
	}

	return SortAscending(rates)
}
