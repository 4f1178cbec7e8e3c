package currencies

import "github.com/sig-0/currencytracker/storage/types"

var (
	USD types.Currency = "USD"
	EUR types.Currency = "EUR"
	GBP types.Currency = "GBP"
	TRY types.Currency = "TRY"
)

// DefaultBase is the base currency used when none is configured
var DefaultBase = TRY
