package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromHex(t *testing.T) {
	full := "0x" + strings.Repeat("ab", AddressLength)
	a, err := AddressFromHex(full)
	require.NoError(t, err)
	assert.Equal(t, full, a.String())
}

func TestAddressFromHex_ShortFormsPadLeft(t *testing.T) {
	a, err := AddressFromHex("0x2")
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"2", a.String())

	// The prefix is optional.
	b, err := AddressFromHex("2")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAddressFromHex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prefix only", "0x"},
		{"not hex", "0xzz"},
		{"too long", "0x" + strings.Repeat("ab", AddressLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddressFromHex(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestMustAddressPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustAddress("not an address") })
	assert.NotPanics(t, func() { MustAddress("0x1") })
}

func TestAddressTextRoundTrip(t *testing.T) {
	a := MustAddress("0xd22b24490e0bae52676651b4f56660a5ff8022a2576e0089f79b3c88d44e08f0")

	text, err := a.MarshalText()
	require.NoError(t, err)

	var b Address
	require.NoError(t, b.UnmarshalText(text))
	assert.Equal(t, a, b)
}

func TestObjectIDSharesRepresentation(t *testing.T) {
	id, err := ObjectIDFromHex("0x42")
	require.NoError(t, err)
	assert.Equal(t, Address(id).String(), id.String())

	var parsed ObjectID
	require.NoError(t, parsed.UnmarshalText([]byte(id.String())))
	assert.Equal(t, id, parsed)
}

func TestAddressMarshalYAML(t *testing.T) {
	a := MustAddress("0x5")
	v, err := a.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, a.String(), v)

	id := MustObjectID("0x6")
	v, err = id.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, id.String(), v)
}
