package types

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the largest number of fractional digits a rate may carry
	MaxScale = 28

	// maxIntegerDigits is the largest number of integer digits a rate may carry
	maxIntegerDigits = 29
)

// ErrDecimalOutOfRange is returned for decimals outside the supported range
var ErrDecimalOutOfRange = errors.New("decimal out of range")

// ParseDecimal parses a plain decimal literal ('.' separator, optional
// exponent), rejecting values with more than MaxScale fractional digits
// or more than 29 integer digits.
// The bounds are checked before any arithmetic touches the value
func ParseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, err
	}

	exp := int64(d.Exponent())
	if exp < -MaxScale {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrDecimalOutOfRange, text)
	}

	coefficient := d.Coefficient()
	digits := int64(len(coefficient.Abs(coefficient).String()))

	if digits+exp > maxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrDecimalOutOfRange, text)
	}

	return d, nil
}
