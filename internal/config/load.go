package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/movelabs/indexer-rpc/internal/kv/bigtable"
)

// Load reads and parses the configuration document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML configuration document. Keys that match no
// declared field are preserved, with their original values, in the
// extras bucket of the section they appeared under.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// The package resolver layer starts out populated from the protocol
	// catalog; the document overwrites fields in place.
	cfg := &Config{PackageResolver: DefaultPackageResolverLayer()}

	var err error
	if cfg.Objects.Extra, err = decodeSection(raw, "objects", &cfg.Objects); err != nil {
		return nil, err
	}
	if cfg.Transactions.Extra, err = decodeSection(raw, "transactions", &cfg.Transactions); err != nil {
		return nil, err
	}
	if cfg.NameService.Extra, err = decodeSection(raw, "name_service", &cfg.NameService); err != nil {
		return nil, err
	}
	if cfg.Coins.Extra, err = decodeSection(raw, "coins", &cfg.Coins); err != nil {
		return nil, err
	}
	if cfg.PackageResolver.Extra, err = decodeSection(raw, "package_resolver", &cfg.PackageResolver); err != nil {
		return nil, err
	}

	if tbl, ok := raw["bigtable_config"]; ok {
		bt := &bigtable.Config{}
		if _, err := decodeTable(tbl, bt); err != nil {
			return nil, fmt.Errorf("section %q: %w", "bigtable_config", err)
		}
		cfg.BigtableConfig = bt
	}

	for key, value := range raw {
		switch key {
		case "objects", "transactions", "name_service", "coins", "package_resolver", "bigtable_config":
		default:
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]any)
			}
			cfg.Extra[key] = value
		}
	}

	return cfg, nil
}

// decodeSection binds the named table onto out and returns the keys that
// matched no field, with their original values. A missing section leaves
// out untouched.
func decodeSection(raw map[string]any, name string, out any) (map[string]any, error) {
	tbl, ok := raw[name]
	if !ok {
		return nil, nil
	}
	extra, err := decodeTable(tbl, out)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", name, err)
	}
	return extra, nil
}

func decodeTable(tbl any, out any) (map[string]any, error) {
	table, ok := tbl.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a table, got %T", tbl)
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:   &md,
		Result:     out,
		TagName:    "toml",
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(table); err != nil {
		return nil, err
	}

	var extra map[string]any
	for _, key := range md.Unused {
		// Nested unused keys are reported dotted; the top-level key
		// already carries the whole sub-tree.
		if strings.Contains(key, ".") {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = table[key]
	}
	return extra, nil
}
