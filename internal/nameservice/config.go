// Package nameservice owns the configuration for name service RPC
// methods.
package nameservice

import (
	"fmt"

	"github.com/movelabs/indexer-rpc/pkg/types"
)

// Config holds the name service configuration.
type Config struct {
	// PackageAddress is the address the name service package is
	// published at.
	PackageAddress types.Address

	// RegistryID is the object ID of the forward lookup registry.
	RegistryID types.ObjectID

	// ReverseRegistryID is the object ID of the reverse lookup registry.
	ReverseRegistryID types.ObjectID
}

// DefaultConfig returns the mainnet name service configuration.
func DefaultConfig() Config {
	return Config{
		PackageAddress:    types.MustAddress("0xd22b24490e0bae52676651b4f56660a5ff8022a2576e0089f79b3c88d44e08f0"),
		RegistryID:        types.MustObjectID("0xe64cd9db9f829c6cc405d9790bd71567ae07259855f4fba6f02c84f52298c106"),
		ReverseRegistryID: types.MustObjectID("0x2fd099e17a292d2bc541df474f9fafa595653848cbabb2d7a4656ec786a1969f"),
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.PackageAddress == (types.Address{}) {
		return fmt.Errorf("name_service.package_address must be set")
	}
	if c.RegistryID == (types.ObjectID{}) {
		return fmt.Errorf("name_service.registry_id must be set")
	}
	if c.ReverseRegistryID == (types.ObjectID{}) {
		return fmt.Errorf("name_service.reverse_registry_id must be set")
	}
	return nil
}
