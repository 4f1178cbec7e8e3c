package types

import "github.com/shopspring/decimal"

type Currency string

func (c Currency) String() string {
	return string(c)
}

// Rate is a single currency rate, relative to the session base currency.
// Rate is the amount of Code equal to one unit of the base currency
type Rate struct {
	Code Currency        `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}
