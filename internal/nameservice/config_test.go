package nameservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/movelabs/indexer-rpc/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t,
		"0xd22b24490e0bae52676651b4f56660a5ff8022a2576e0089f79b3c88d44e08f0",
		cfg.PackageAddress.String())
	assert.Equal(t,
		"0xe64cd9db9f829c6cc405d9790bd71567ae07259855f4fba6f02c84f52298c106",
		cfg.RegistryID.String())
	assert.Equal(t,
		"0x2fd099e17a292d2bc541df474f9fafa595653848cbabb2d7a4656ec786a1969f",
		cfg.ReverseRegistryID.String())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()

	cfg.PackageAddress = types.Address{}
	assert.ErrorContains(t, cfg.Validate(), "package_address")

	cfg = DefaultConfig()
	cfg.RegistryID = types.ObjectID{}
	assert.ErrorContains(t, cfg.Validate(), "registry_id")

	cfg = DefaultConfig()
	cfg.ReverseRegistryID = types.ObjectID{}
	assert.ErrorContains(t, cfg.Validate(), "reverse_registry_id")
}
