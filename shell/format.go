package shell

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sig-0/currencytracker/query"
	"github.com/sig-0/currencytracker/storage/types"
)

// codeWidth is the column width of the currency code in listings
const codeWidth = 6

// clearSequence moves the cursor home and clears the terminal
const clearSequence = "\033[H\033[2J"

const menuText = `===== CurrencyTracker =====
1. List all currencies
2. Search currency by code
3. List currencies above a value
4. Sort currencies by rate
5. Show statistical summary
0. Exit
`

// formatRate formats a single rate as "<code> : <rate>",
// with the code padded or truncated to codeWidth columns
func formatRate(r *types.Rate) string {
	code := []rune(r.Code.String())
	if len(code) > codeWidth {
		code = code[:codeWidth]
	}

	return fmt.Sprintf("%-*s : %s", codeWidth, string(code), formatDecimal(r.Rate))
}

// formatSummary formats the statistical summary block
func formatSummary(summary *query.Summary, base types.Currency) string {
	return fmt.Sprintf(
		"Total currencies : %d\n"+
			"Highest rate     : %s = %s\n"+
			"Lowest rate      : %s = %s\n"+
			"Average rate     : %s\n"+
			"\nNote: base is %s. Rate = value of 1 %s in the listed currency.\n",
		summary.Count,
		summary.Max.Code, formatDecimal(summary.Max.Rate),
		summary.Min.Code, formatDecimal(summary.Min.Rate),
		summary.Average.String(),
		base, base,
	)
}

// formatDecimal prints d with the scale it was parsed with,
// so trailing zeros like the one in 1.10 are kept
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}

	return d.StringFixed(0)
}
