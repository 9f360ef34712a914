package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvLedgerFile = "ROR_LEDGER_FILE"
	EnvConfigFile = "ROR_CONFIG_FILE"
	EnvCurrency   = "ROR_CURRENCY"
	EnvVerbose    = "ROR_VERBOSE"
)

const (
	defaultLedgerFile = "ledger.jsonl"
	defaultConfigFile = "ror.toml"
	defaultCurrency   = "USD"
)

// Config is the content of the configuration file.
//
//	currency = "USD"
//
//	[portfolios.brokerage]
//	accounts = ["^Assets:US:Brokerage"]
//	internal = ["^Income:.*:Dividends"]
type Config struct {
	LedgerFile string               `toml:"ledger-file"`
	Currency   string               `toml:"currency"`
	Portfolios map[string]Portfolio `toml:"portfolios"`
}

// Portfolio is a named selection of tracked accounts.
type Portfolio struct {
	Accounts []string `toml:"accounts"` // regular expressions of the tracked accounts
	Internal []string `toml:"internal"` // regular expressions of the internal accounts
	Currency string   `toml:"currency"`
}

// LoadConfig reads a configuration file. A missing file is an empty
// configuration unless required.
func LoadConfig(path string, required bool) (*Config, error) {
	config := &Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// Portfolio returns the named portfolio.
func (c *Config) Portfolio(name string) (Portfolio, error) {
	p, exists := c.Portfolios[name]
	if !exists {
		names := make([]string, 0, len(c.Portfolios))
		for n := range c.Portfolios {
			names = append(names, n)
		}
		slices.Sort(names)
		return Portfolio{}, fmt.Errorf("unknown portfolio %q, configured portfolios are %q", name, names)
	}
	return p, nil
}

// settings are the global settings of a command, resolved from the flags,
// the environment and the configuration file, in that order.
type settings struct {
	LedgerFile string
	Currency   string
	Verbose    bool
	Config     *Config
}

// loadSettings resolves the global flags.
//
// A .env file in the working directory is loaded first; it never overrides
// variables already set in the environment.
func loadSettings() (*settings, error) {
	_ = godotenv.Load()

	path, required := *configFile, *configFile != ""
	if !required {
		path, required = os.Getenv(EnvConfigFile), os.Getenv(EnvConfigFile) != ""
	}
	if !required {
		path = defaultConfigFile
	}
	config, err := LoadConfig(path, required)
	if err != nil {
		return nil, err
	}

	s := &settings{
		LedgerFile: firstOf(*ledgerFile, os.Getenv(EnvLedgerFile), config.LedgerFile, defaultLedgerFile),
		Currency:   firstOf(*currency, os.Getenv(EnvCurrency)),
		Verbose:    *verbose,
		Config:     config,
	}
	if !s.Verbose {
		s.Verbose, _ = strconv.ParseBool(os.Getenv(EnvVerbose))
	}
	return s, nil
}

// firstOf returns the first non empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
