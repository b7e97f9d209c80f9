// Package bigtable holds the configuration for the optional wide-column
// KV backend.
package bigtable

import "fmt"

// Config identifies the Bigtable instance backing the KV store. Its
// presence in the service configuration is what enables the backend.
type Config struct {
	// InstanceID is the instance to connect to.
	InstanceID string `toml:"instance_id" yaml:"instance_id"`
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.InstanceID == "" {
		return fmt.Errorf("bigtable_config.instance_id must be set")
	}
	return nil
}
