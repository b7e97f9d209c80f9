// Package config layers user-authored configuration documents over the
// defaults owned by each subsystem of the indexer RPC service.
//
// A document is decoded into a Config whose sections are "layers": every
// field is optional, and a field left unset inherits its value from the
// baseline the owning subsystem supplies at start-up. Keys that match no
// declared field are collected per section and surfaced as a warning when
// the section is finished, never an error, so a document written for a
// newer binary still boots an older one.
package config

import (
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"github.com/movelabs/indexer-rpc/internal/api/coins"
	"github.com/movelabs/indexer-rpc/internal/api/objects"
	"github.com/movelabs/indexer-rpc/internal/api/transactions"
	"github.com/movelabs/indexer-rpc/internal/kv/bigtable"
	"github.com/movelabs/indexer-rpc/internal/nameservice"
	"github.com/movelabs/indexer-rpc/internal/packageresolver"
	"github.com/movelabs/indexer-rpc/internal/protocol"
	"github.com/movelabs/indexer-rpc/pkg/types"
)

// Config is the root of the configuration document.
type Config struct {
	// Objects configures object-related RPC methods.
	Objects ObjectsLayer `toml:"objects" yaml:"objects"`

	// Transactions configures transaction-related RPC methods.
	Transactions TransactionsLayer `toml:"transactions" yaml:"transactions"`

	// NameService configures name service RPC methods.
	NameService NameServiceLayer `toml:"name_service" yaml:"name_service"`

	// Coins configures coin-related RPC methods.
	Coins CoinsLayer `toml:"coins" yaml:"coins"`

	// BigtableConfig enables the wide-column KV backend when present.
	BigtableConfig *bigtable.Config `toml:"bigtable_config,omitempty" yaml:"bigtable_config,omitempty"`

	// PackageResolver bounds the package resolver.
	PackageResolver PackageResolverLayer `toml:"package_resolver" yaml:"package_resolver"`

	// Extra collects top-level keys that matched no section.
	Extra map[string]any `toml:"-" yaml:"-"`
}

// ObjectsLayer holds overrides for the objects API configuration.
type ObjectsLayer struct {
	MaxMultiGetObjects *int `toml:"max_multi_get_objects,omitempty" yaml:"max_multi_get_objects,omitempty"`
	DefaultPageSize    *int `toml:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`
	MaxPageSize        *int `toml:"max_page_size,omitempty" yaml:"max_page_size,omitempty"`

	Extra map[string]any `toml:"-" yaml:"-"`
}

// TransactionsLayer holds overrides for the transactions API
// configuration.
type TransactionsLayer struct {
	DefaultPageSize *int `toml:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`
	MaxPageSize     *int `toml:"max_page_size,omitempty" yaml:"max_page_size,omitempty"`

	Extra map[string]any `toml:"-" yaml:"-"`
}

// NameServiceLayer holds overrides for the name service configuration.
type NameServiceLayer struct {
	PackageAddress    *types.Address  `toml:"package_address,omitempty" yaml:"package_address,omitempty"`
	RegistryID        *types.ObjectID `toml:"registry_id,omitempty" yaml:"registry_id,omitempty"`
	ReverseRegistryID *types.ObjectID `toml:"reverse_registry_id,omitempty" yaml:"reverse_registry_id,omitempty"`

	Extra map[string]any `toml:"-" yaml:"-"`
}

// CoinsLayer holds overrides for the coins API configuration.
type CoinsLayer struct {
	DefaultPageSize *int `toml:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`
	MaxPageSize     *int `toml:"max_page_size,omitempty" yaml:"max_page_size,omitempty"`

	Extra map[string]any `toml:"-" yaml:"-"`
}

// PackageResolverLayer holds the package resolver bounds. Unlike the
// other layers its fields are not optional: no subsystem supplies a
// baseline, so the layer itself starts out populated from the protocol
// catalog and the document overwrites fields in place.
type PackageResolverLayer struct {
	MaxTypeArgumentDepth int `toml:"max_type_argument_depth" yaml:"max_type_argument_depth"`
	MaxTypeArgumentWidth int `toml:"max_type_argument_width" yaml:"max_type_argument_width"`
	MaxTypeNodes         int `toml:"max_type_nodes" yaml:"max_type_nodes"`
	MaxMoveValueDepth    int `toml:"max_move_value_depth" yaml:"max_move_value_depth"`

	Extra map[string]any `toml:"-" yaml:"-"`
}

// Example returns a configuration with every field populated by its
// default value, suitable for serializing as a template document.
// Finishing it against those same defaults yields the defaults back.
func Example() *Config {
	return &Config{
		Objects:         ObjectsLayerFrom(objects.DefaultConfig()),
		Transactions:    TransactionsLayerFrom(transactions.DefaultConfig()),
		NameService:     NameServiceLayerFrom(nameservice.DefaultConfig()),
		Coins:           CoinsLayerFrom(coins.DefaultConfig()),
		PackageResolver: DefaultPackageResolverLayer(),
	}
}

// Finish drains the root extras bucket, warning about unmatched
// top-level keys. Section layers are finished individually, against the
// baselines their subsystems supply. The receiver must not be reused
// afterwards.
func (c Config) Finish() Config {
	checkExtra("top-level", c.Extra)
	c.Extra = nil
	return c
}

// Finish layers the overrides in l on top of base. The receiver must not
// be reused afterwards.
func (l ObjectsLayer) Finish(base objects.Config) objects.Config {
	checkExtra("objects", l.Extra)
	return objects.Config{
		MaxMultiGetObjects: valueOr(l.MaxMultiGetObjects, base.MaxMultiGetObjects),
		DefaultPageSize:    valueOr(l.DefaultPageSize, base.DefaultPageSize),
		MaxPageSize:        valueOr(l.MaxPageSize, base.MaxPageSize),
	}
}

// Finish layers the overrides in l on top of base. The receiver must not
// be reused afterwards.
func (l TransactionsLayer) Finish(base transactions.Config) transactions.Config {
	checkExtra("transactions", l.Extra)
	return transactions.Config{
		DefaultPageSize: valueOr(l.DefaultPageSize, base.DefaultPageSize),
		MaxPageSize:     valueOr(l.MaxPageSize, base.MaxPageSize),
	}
}

// Finish layers the overrides in l on top of base. The receiver must not
// be reused afterwards.
func (l NameServiceLayer) Finish(base nameservice.Config) nameservice.Config {
	checkExtra("name service", l.Extra)
	return nameservice.Config{
		PackageAddress:    valueOr(l.PackageAddress, base.PackageAddress),
		RegistryID:        valueOr(l.RegistryID, base.RegistryID),
		ReverseRegistryID: valueOr(l.ReverseRegistryID, base.ReverseRegistryID),
	}
}

// Finish layers the overrides in l on top of base. The receiver must not
// be reused afterwards.
func (l CoinsLayer) Finish(base coins.Config) coins.Config {
	checkExtra("coins", l.Extra)
	return coins.Config{
		DefaultPageSize: valueOr(l.DefaultPageSize, base.DefaultPageSize),
		MaxPageSize:     valueOr(l.MaxPageSize, base.MaxPageSize),
	}
}

// Finish converts the layer into the resolver limits. The receiver must
// not be reused afterwards.
func (l PackageResolverLayer) Finish() packageresolver.Limits {
	checkExtra("package-resolver", l.Extra)
	return packageresolver.Limits{
		MaxTypeArgumentDepth: l.MaxTypeArgumentDepth,
		MaxTypeArgumentWidth: l.MaxTypeArgumentWidth,
		MaxTypeNodes:         l.MaxTypeNodes,
		MaxMoveValueDepth:    l.MaxMoveValueDepth,
	}
}

// DefaultPackageResolverLayer derives package resolver bounds from the
// protocol catalog.
//
// It reads the maximum protocol version this binary knows about rather
// than the version the chain is running: the values only serve as upper
// bounds for defaults that operators may override, and the service must
// not refuse to start just because it cannot observe the chain yet.
func DefaultPackageResolverLayer() PackageResolverLayer {
	cfg := protocol.ForMaxVersion()
	return PackageResolverLayer{
		MaxTypeArgumentDepth: int(cfg.MaxTypeArgumentDepth),
		MaxTypeArgumentWidth: int(cfg.MaxGenericInstantiationLength),
		MaxTypeNodes:         int(cfg.MaxTypeNodes),
		MaxMoveValueDepth:    int(cfg.MaxMoveValueDepth),
	}
}

// ObjectsLayerFrom lifts a resolved objects configuration into a layer
// with every field set.
func ObjectsLayerFrom(cfg objects.Config) ObjectsLayer {
	return ObjectsLayer{
		MaxMultiGetObjects: &cfg.MaxMultiGetObjects,
		DefaultPageSize:    &cfg.DefaultPageSize,
		MaxPageSize:        &cfg.MaxPageSize,
	}
}

// TransactionsLayerFrom lifts a resolved transactions configuration into
// a layer with every field set.
func TransactionsLayerFrom(cfg transactions.Config) TransactionsLayer {
	return TransactionsLayer{
		DefaultPageSize: &cfg.DefaultPageSize,
		MaxPageSize:     &cfg.MaxPageSize,
	}
}

// NameServiceLayerFrom lifts a resolved name service configuration into
// a layer with every field set.
func NameServiceLayerFrom(cfg nameservice.Config) NameServiceLayer {
	return NameServiceLayer{
		PackageAddress:    &cfg.PackageAddress,
		RegistryID:        &cfg.RegistryID,
		ReverseRegistryID: &cfg.ReverseRegistryID,
	}
}

// CoinsLayerFrom lifts a resolved coins configuration into a layer with
// every field set.
func CoinsLayerFrom(cfg coins.Config) CoinsLayer {
	return CoinsLayer{
		DefaultPageSize: &cfg.DefaultPageSize,
		MaxPageSize:     &cfg.MaxPageSize,
	}
}

// valueOr returns the override if one was supplied, otherwise the
// baseline value.
func valueOr[T any](override *T, base T) T {
	if override != nil {
		return *override
	}
	return base
}

// checkExtra warns about configuration keys that matched no declared
// field. Unknown keys are not fatal: they may be typos, or options
// introduced in a newer version of the indexer than the one running.
func checkExtra(section string, extra map[string]any) {
	if len(extra) == 0 {
		return
	}
	plural := ""
	if len(extra) != 1 {
		plural = "s"
	}
	rendered, err := toml.Marshal(extra)
	if err != nil {
		rendered = []byte(fmt.Sprintf("%v\n", extra))
	}
	slog.Warn(fmt.Sprintf(
		"Found unrecognized %s field%s which will be ignored. This could be because of a typo, or because it was introduced in a newer version of the indexer:\n%s",
		section, plural, rendered))
}
