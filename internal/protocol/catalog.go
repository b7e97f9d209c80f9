// Package protocol is a static catalog of protocol-version-indexed chain
// limits.
//
// The catalog records, for every protocol version this binary knows
// about, the execution limits the chain enforces at that version. The
// indexer RPC only reads a handful of them, as upper bounds for package
// resolver defaults.
package protocol

import "fmt"

// Version is a chain protocol version.
type Version uint64

// MinSupportedVersion and MaxSupportedVersion bound the versions this
// binary has catalog entries for.
const (
	MinSupportedVersion Version = 1
	MaxSupportedVersion Version = 70
)

// Config is the set of catalog limits for one protocol version.
type Config struct {
	Version Version

	// Type resolution limits.
	MaxTypeArgumentDepth          uint32
	MaxGenericInstantiationLength uint32
	MaxTypeNodes                  uint32

	// Value construction limit.
	MaxMoveValueDepth uint32
}

// ForVersion returns the catalog entry for the given protocol version.
func ForVersion(v Version) (Config, error) {
	if v < MinSupportedVersion || v > MaxSupportedVersion {
		return Config{}, fmt.Errorf(
			"protocol version %d outside supported range [%d, %d]",
			v, MinSupportedVersion, MaxSupportedVersion)
	}

	// Genesis values, adjusted cumulatively by later versions.
	cfg := Config{
		Version:                       v,
		MaxTypeArgumentDepth:          16,
		MaxGenericInstantiationLength: 16,
		MaxTypeNodes:                  256,
		MaxMoveValueDepth:             128,
	}
	if v >= 8 {
		cfg.MaxGenericInstantiationLength = 32
	}
	return cfg, nil
}

// ForMaxVersion returns the catalog entry for the maximum protocol
// version this binary knows about. The live chain may be running an older
// version; callers that only need upper bounds (such as configuration
// defaults) can use this without observing the chain.
func ForMaxVersion() Config {
	cfg, err := ForVersion(MaxSupportedVersion)
	if err != nil {
		// MaxSupportedVersion is always within the supported range.
		panic(err)
	}
	return cfg
}
