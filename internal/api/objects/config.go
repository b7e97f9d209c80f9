// Package objects owns the configuration for object-related RPC methods.
package objects

import "fmt"

// Config holds the objects API configuration.
type Config struct {
	// MaxMultiGetObjects is the most object IDs a single multi-get call
	// may request.
	MaxMultiGetObjects int

	// DefaultPageSize is the page size used when a request does not ask
	// for one.
	DefaultPageSize int

	// MaxPageSize caps the page size a request may ask for.
	MaxPageSize int
}

// DefaultConfig returns the default objects API configuration.
func DefaultConfig() Config {
	return Config{
		MaxMultiGetObjects: 50,
		DefaultPageSize:    50,
		MaxPageSize:        100,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.MaxMultiGetObjects <= 0 {
		return fmt.Errorf("objects.max_multi_get_objects must be positive")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("objects.default_page_size must be positive")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("objects.max_page_size (%d) must be at least default_page_size (%d)",
			c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}
