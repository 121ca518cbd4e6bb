// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compactid

import (
	"encoding/hex"
	"io"
	"strings"
)

// serverPattern is the byte pattern that names the server.
const serverPattern = "\x00"

// Server is the identifier of the server itself.
var Server = ID{data: serverPattern}

// ID is an opaque protocol endpoint identifier.
//
// The bytes are held in a string so that the value is immutable and
// comparable. The zero value is the empty identifier.
type ID struct {
	data string
}

// New returns an identifier holding a copy of data. The caller keeps
// ownership of data and may modify or reuse it afterward. A nil or
// empty slice yields the empty identifier.
func New(data []byte) ID {
	return ID{data: string(data)}
}

// Compare returns -1 if a sorts before b, 0 if they are identical, and
// +1 if a sorts after b. Bytes are compared as unsigned values; when
// one identifier is a prefix of the other, the shorter sorts first.
func Compare(a, b ID) int {
	return strings.Compare(a.data, b.data)
}

// Compare is the method form of [Compare].
func (id ID) Compare(other ID) int {
	return Compare(id, other)
}

// Equal reports whether id and other have the same length and bytes.
// It is equivalent to id == other.
func (id ID) Equal(other ID) bool {
	return id.data == other.data
}

// IsServer reports whether id is the server identifier.
func (id ID) IsServer() bool {
	return id.data == serverPattern
}

// IsZero reports whether id is the empty identifier.
func (id ID) IsZero() bool {
	return id.data == ""
}

// Len returns the number of bytes in id.
func (id ID) Len() int {
	return len(id.data)
}

// Bytes returns a copy of the identifier's bytes. The result is never
// nil; the empty identifier returns an empty slice.
func (id ID) Bytes() []byte {
	return append(make([]byte, 0, len(id.data)), id.data...)
}

// AppendTo appends the identifier's bytes to dst and returns the
// extended slice.
func (id ID) AppendTo(dst []byte) []byte {
	return append(dst, id.data...)
}

// WriteTo writes the identifier's bytes to w. It implements
// io.WriterTo so message framers can copy an identifier into an output
// buffer without an intermediate allocation.
func (id ID) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, id.data)
	return int64(n), err
}

// String returns the lowercase hex encoding of the identifier, or ""
// for the empty identifier.
func (id ID) String() string {
	return hex.EncodeToString([]byte(id.data))
}
