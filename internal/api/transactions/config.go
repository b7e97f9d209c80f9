// Package transactions owns the configuration for transaction-related
// RPC methods.
package transactions

import "fmt"

// Config holds the transactions API configuration.
type Config struct {
	// DefaultPageSize is the page size used when a request does not ask
	// for one.
	DefaultPageSize int

	// MaxPageSize caps the page size a request may ask for.
	MaxPageSize int
}

// DefaultConfig returns the default transactions API configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize: 50,
		MaxPageSize:     100,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("transactions.default_page_size must be positive")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("transactions.max_page_size (%d) must be at least default_page_size (%d)",
			c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}
