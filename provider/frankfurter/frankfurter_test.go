package frankfurter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/currencytracker/provider/currencies"
	"github.com/sig-0/currencytracker/storage/types"
)

// newTestServer starts a server that responds with the given status and body.
// Received requests are forwarded on the returned channel
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, <-chan *http.Request) {
	t.Helper()

	reqCh := make(chan *http.Request, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case reqCh <- r.Clone(context.Background()):
		default:
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(srv.Close)

	return srv, reqCh
}

func TestProvider_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("request shape", func(t *testing.T) {
		t.Parallel()

		srv, reqCh := newTestServer(t, http.StatusOK, `{"rates": {"USD": 0.031}}`)

		p := NewProvider(srv.URL+"/", 0)
		defer p.Close()

		_, err := p.Fetch(context.Background(), currencies.TRY)
		require.NoError(t, err)

		captured := <-reqCh

		assert.Equal(t, http.MethodGet, captured.Method)
		assert.Equal(t, "/latest", captured.URL.Path)
		assert.Equal(t, "TRY", captured.URL.Query().Get("from"))
	})

	t.Run("preserves response order", func(t *testing.T) {
		t.Parallel()

		body := `{
			"amount": 1.0,
			"base": "TRY",
			"date": "2026-01-13",
			"rates": {"USD": 0.031, "EUR": 0.029, "GBP": 0.025, "AUD": 0.047}
		}`

		srv, _ := newTestServer(t, http.StatusOK, body)

		p := NewProvider(srv.URL, 0)
		defer p.Close()

		rates, err := p.Fetch(context.Background(), currencies.TRY)
		require.NoError(t, err)
		require.Len(t, rates, 4)

		expected := []struct {
			code string
			rate string
		}{
			{"USD", "0.031"},
			{"EUR", "0.029"},
			{"GBP", "0.025"},
			{"AUD", "0.047"},
		}

		for i, e := range expected {
			assert.Equal(t, e.code, rates[i].Code.String())
			assert.Equal(t, e.rate, rates[i].Rate.String())
		}
	})

	t.Run("zero and exponent rates", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK, `{"rates": {"XAU": 0, "JPY": 4.5e0}}`)

		p := NewProvider(srv.URL, 0)
		defer p.Close()

		rates, err := p.Fetch(context.Background(), currencies.TRY)
		require.NoError(t, err)
		require.Len(t, rates, 2)

		assert.True(t, rates[0].Rate.IsZero())
		assert.Equal(t, "4.5", rates[1].Rate.String())
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusInternalServerError, `{"message": "boom"}`)

		p := NewProvider(srv.URL, 0)
		defer p.Close()

		rates, err := p.Fetch(context.Background(), currencies.TRY)
		require.Error(t, err)
		assert.Nil(t, rates)

		var remoteErr *types.RemoteError

		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
		assert.Contains(t, remoteErr.Error(), "500")
	})

	t.Run("empty rates", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK, `{"rates": {}}`)

		p := NewProvider(srv.URL, 0)
		defer p.Close()

		rates, err := p.Fetch(context.Background(), currencies.TRY)

		assert.ErrorIs(t, err, types.ErrEmptyResult)
		assert.Nil(t, rates)
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		p := NewProvider(url, 0)
		defer p.Close()

		_, err := p.Fetch(context.Background(), currencies.TRY)
		require.Error(t, err)

		var (
			remoteErr *types.RemoteError
			parseErr  *types.ParseError
		)

		assert.False(t, errors.As(err, &remoteErr))
		assert.False(t, errors.As(err, &parseErr))
	})
}

func TestParseLatest(t *testing.T) {
	t.Parallel()

	malformed := []struct {
		name string
		body string
	}{
		{"not json", `<html></html>`},
		{"top-level array", `[{"USD": 0.031}]`},
		{"missing rates", `{"base": "TRY"}`},
		{"null rates", `{"rates": null}`},
		{"rates array", `{"rates": [0.031]}`},
		{"rates number", `{"rates": 5}`},
		{"quoted rate", `{"rates": {"USD": "0.031"}}`},
		{"null rate", `{"rates": {"USD": null}}`},
		{"nested rate", `{"rates": {"USD": {"value": 0.031}}}`},
		{"negative rate", `{"rates": {"USD": -0.031}}`},
		{"blank code", `{"rates": {" ": 0.031}}`},
		{"duplicate code", `{"rates": {"USD": 0.031, "USD": 0.032}}`},
		{"huge exponent", `{"rates": {"USD": 1e900000000}}`},
		{"tiny exponent", `{"rates": {"USD": 1e-900000000}}`},
		{"too many integer digits", `{"rates": {"USD": 100000000000000000000000000000}}`},
	}

	for _, tc := range malformed {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rates, err := parseLatest([]byte(tc.body))

			var parseErr *types.ParseError

			assert.True(t, errors.As(err, &parseErr), "unexpected error: %v", err)
			assert.Nil(t, rates)
		})
	}

	t.Run("extra fields ignored", func(t *testing.T) {
		t.Parallel()

		rates, err := parseLatest([]byte(`{"amount": 1, "rates": {"usd": 1.5}, "date": "2026-01-13"}`))
		require.NoError(t, err)
		require.Len(t, rates, 1)

		// Codes are passed through as received
		assert.Equal(t, "usd", rates[0].Code.String())
		assert.Equal(t, "1.5", rates[0].Rate.String())
	})
}
