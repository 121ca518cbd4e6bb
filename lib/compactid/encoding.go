// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compactid

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrInvalidEncoding is returned (wrapped) when a textual identifier
// cannot be decoded.
var ErrInvalidEncoding = errors.New("invalid compact ID encoding")

// ParseHex decodes a hex-encoded identifier. Upper and lower case are
// both accepted. The empty string yields the empty identifier.
func ParseHex(s string) (ID, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: hex %q: %v", ErrInvalidEncoding, s, err)
	}
	return ID{data: string(decoded)}, nil
}

// MustParseHex is like ParseHex but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParseHex(s string) ID {
	id, err := ParseHex(s)
	if err != nil {
		panic(fmt.Sprintf("compactid.MustParseHex(%q): %v", s, err))
	}
	return id
}

// ParseBase58 decodes a base58-encoded identifier (Bitcoin alphabet).
// The empty string yields the empty identifier.
func ParseBase58(s string) (ID, error) {
	if s == "" {
		return ID{}, nil
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: base58 %q: %v", ErrInvalidEncoding, s, err)
	}
	return ID{data: string(decoded)}, nil
}

// Base58 returns the base58 encoding of the identifier, or "" for the
// empty identifier. Leading zero bytes encode as '1', so the server
// identifier is "1".
func (id ID) Base58() string {
	if id.data == "" {
		return ""
	}
	return base58.Encode([]byte(id.data))
}

// MarshalText implements encoding.TextMarshaler. The text form is
// lowercase hex, so JSON carries identifiers as hex strings.
func (id ID) MarshalText() ([]byte, error) {
	encoded := make([]byte, hex.EncodedLen(len(id.data)))
	hex.Encode(encoded, []byte(id.data))
	return encoded, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the empty identifier.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseHex(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The binary form is
// the raw identifier bytes with no length prefix; framing is the
// caller's concern.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The input is
// copied.
func (id *ID) UnmarshalBinary(data []byte) error {
	*id = New(data)
	return nil
}
