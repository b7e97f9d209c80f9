// Package types holds the chain value types shared across the indexer
// RPC configuration surface.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the size of an account address in bytes.
const AddressLength = 32

// Address is a 32-byte account address, rendered as 0x-prefixed hex.
type Address [AddressLength]byte

// ObjectID identifies an object on chain. It shares the address
// representation but is a distinct type so the two cannot be mixed up.
type ObjectID Address

// AddressFromHex parses an address from its hex form. The 0x prefix is
// optional and short forms are left-padded with zeros.
func AddressFromHex(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return a, fmt.Errorf("empty address")
	}
	if len(s) > 2*AddressLength {
		return a, fmt.Errorf("address too long: %d hex characters", len(s))
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address: %w", err)
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

// MustAddress is AddressFromHex for known-good constants. It panics on
// malformed input.
func MustAddress(s string) Address {
	a, err := AddressFromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ObjectIDFromHex parses an object ID from its hex form.
func ObjectIDFromHex(s string) (ObjectID, error) {
	a, err := AddressFromHex(s)
	return ObjectID(a), err
}

// MustObjectID is ObjectIDFromHex for known-good constants.
func MustObjectID(s string) ObjectID {
	return ObjectID(MustAddress(s))
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := AddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML renders the address as its hex form.
func (a Address) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (i ObjectID) String() string {
	return Address(i).String()
}

// MarshalText implements encoding.TextMarshaler.
func (i ObjectID) MarshalText() ([]byte, error) {
	return Address(i).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ObjectID) UnmarshalText(text []byte) error {
	return (*Address)(i).UnmarshalText(text)
}

// MarshalYAML renders the object ID as its hex form.
func (i ObjectID) MarshalYAML() (any, error) {
	return i.String(), nil
}
