package config

import (
	"errors"
	"net/url"
	"os"
	"regexp"

	"github.com/pelletier/go-toml"

	"github.com/sig-0/currencytracker/provider/currencies"
	"github.com/sig-0/currencytracker/provider/frankfurter"
)

var (
	ErrInvalidBaseCurrency = errors.New("invalid base currency")
	ErrInvalidAPIURL       = errors.New("invalid API URL")
	ErrInvalidTimeout      = errors.New("invalid request timeout")
)

var baseCurrencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Config defines the tracker configuration
type Config struct {
	// The base currency all rates are expressed against.
	// Format should be a three-letter uppercase code, e.g. TRY
	BaseCurrency string `toml:"base_currency"`

	// The rate API host, without the endpoint path
	APIURL string `toml:"api_url"`

	// The HTTP request timeout in seconds. 0 keeps the transport defaults
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultConfig returns the default tracker configuration
func DefaultConfig() *Config {
	return &Config{
		BaseCurrency:   currencies.DefaultBase.String(),
		APIURL:         frankfurter.DefaultURL,
		TimeoutSeconds: 0,
	}
}

// ValidateConfig validates the tracker configuration
func ValidateConfig(config *Config) error {
	// Validate the base currency
	if !baseCurrencyRegex.MatchString(config.BaseCurrency) {
		return ErrInvalidBaseCurrency
	}

	// Validate the API URL
	u, err := url.Parse(config.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}

	if config.TimeoutSeconds < 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// Read reads the configuration from the given path.
// Fields missing from the file keep their default values
func Read(path string) (*Config, error) {
	// Read the config file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it
	var cfg Config

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()

	if cfg.BaseCurrency == "" {
		cfg.BaseCurrency = defaults.BaseCurrency
	}

	if cfg.APIURL == "" {
		cfg.APIURL = defaults.APIURL
	}

	return &cfg, nil
}
