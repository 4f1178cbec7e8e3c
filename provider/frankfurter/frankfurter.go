package frankfurter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sig-0/currencytracker/storage/types"
)

// DefaultURL is the public Frankfurter API host
const DefaultURL = "https://api.frankfurter.app"

var (
	errMissingRates  = errors.New("missing rates object")
	errInvalidRate   = errors.New("invalid rate")
	errEmptyCode     = errors.New("empty currency code")
	errDuplicateCode = errors.New("duplicate currency code")
	errNotObject     = errors.New("rates is not an object")
	errNegativeRate  = errors.New("negative rate")
)

// latestResponse is the response from the /latest endpoint.
// The rates object is kept raw so its key order survives decoding
type latestResponse struct {
	Rates json.RawMessage `json:"rates"`
}

// Provider fetches the latest exchange rates from the Frankfurter API
type Provider struct {
	client *http.Client
	url    string
}

// NewProvider creates a new instance of the Frankfurter provider.
// A zero timeout leaves the transport defaults in place
func NewProvider(url string, timeout time.Duration) *Provider {
	return &Provider{
		client: &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		url: strings.TrimRight(url, "/"),
	}
}

// Close releases the provider's idle connections
func (p *Provider) Close() {
	p.client.CloseIdleConnections()
}

// Fetch fetches the latest rates for the given base currency, in the order
// the API lists them
func (p *Provider) Fetch(ctx context.Context, base types.Currency) ([]*types.Rate, error) {
	reqURL, err := p.latestURL(base)
	if err != nil {
		return nil, err
	}

	// Prepare the request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Execute the request
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.RemoteError{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	return parseLatest(body)
}

// latestURL builds the /latest URL for the given base
func (p *Provider) latestURL(base types.Currency) (string, error) {
	u, err := url.Parse(p.url + "/latest")
	if err != nil {
		return "", fmt.Errorf("invalid API URL %q: %w", p.url, err)
	}

	q := u.Query()
	q.Set("from", base.String())
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// parseLatest parses the /latest response body into rates
func parseLatest(body []byte) ([]*types.Rate, error) {
	var apiResp latestResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &types.ParseError{Err: err}
	}

	raw := bytes.TrimSpace(apiResp.Rates)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, &types.ParseError{Err: errMissingRates}
	}

	rates, err := decodeRates(raw)
	if err != nil {
		return nil, &types.ParseError{Err: err}
	}

	if len(rates) == 0 {
		return nil, types.ErrEmptyResult
	}

	return rates, nil
}

// decodeRates walks the rates object token by token, keeping key order
func decodeRates(raw []byte) ([]*types.Rate, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var (
		rates = make([]*types.Rate, 0, 32)
		seen  = make(map[string]struct{})
	)

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		code, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		if strings.TrimSpace(code) == "" {
			return nil, errEmptyCode
		}

		if _, exists := seen[code]; exists {
			return nil, fmt.Errorf("%w: %s", errDuplicateCode, code)
		}

		seen[code] = struct{}{}

		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, err
		}

		// Only bare JSON numbers are accepted, quoted values and null fail here
		rate, parseErr := types.ParseDecimal(string(value))
		if errors.Is(parseErr, types.ErrDecimalOutOfRange) {
			return nil, fmt.Errorf("rate for %s: %w", code, parseErr)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("%w for %s: %s", errInvalidRate, code, value)
		}

		if rate.IsNegative() {
			return nil, fmt.Errorf("%w for %s: %s", errNegativeRate, code, value)
		}

		rates = append(rates, &types.Rate{
			Code: types.Currency(code),
			Rate: rate,
		})
	}

	// Consume the closing brace
	if _, err = dec.Token(); err != nil {
		return nil, err
	}

	return rates, nil
}
