// Package frankfurter provides the exchange rate provider backed by the
// Frankfurter public API.
//
// # Endpoint
//
// URL: https://api.frankfurter.app/latest?from=<BASE>
//
// The response is expected to carry a "rates" object mapping currency
// codes to the amount of that currency equal to one unit of BASE:
//
//	{"amount": 1.0, "base": "TRY", "date": "2026-01-13", "rates": {"USD": 0.031, "EUR": 0.029}}
//
// All other fields are ignored.
//
// # Decoding
//
// Rates are decoded token by token so the returned slice follows the order
// of the keys in the response body. Values are parsed straight from the
// JSON number literal into a decimal, so no binary floating point
// representation error is introduced.
//
// A non-2xx status yields a RemoteError, a malformed body (missing rates,
// non-numeric, negative or duplicate entries) a ParseError, and an empty
// rates object ErrEmptyResult.
package frankfurter
