// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compactid provides the identifier type used to name protocol
// endpoints: client sessions, channels, shared objects, and the server
// itself.
//
// An [ID] is an opaque, immutable, variable-length byte sequence. The
// package never interprets the bytes. Identifiers are assigned by the
// server and arrive from the transport as raw bytes; [New] copies them
// so the transport may reuse its receive buffer immediately.
//
// The API surface:
//
//   - [New] -- wraps a copy of raw bytes; any content and any length,
//     including zero, is accepted
//   - [Compare] and [ID.Compare] -- unsigned byte-wise lexicographic
//     order where a strict prefix sorts first; a total order suitable
//     for slices.SortFunc and ordered indexes
//   - [ID.IsServer] -- reports whether an identifier names the server
//     rather than a session or object
//   - [ID.Bytes], [ID.Len], [ID.AppendTo], [ID.WriteTo] -- read access
//     for framing outgoing messages
//
// ID is comparable with ==, so it can be used directly as a map key.
// The zero value is the empty identifier, which is a valid value and
// sorts before every other identifier.
//
// # Server identifier
//
// The server is named by the single byte 0x00, available as [Server].
// Callers must test with [ID.IsServer] rather than comparing against a
// literal so the pattern is defined in exactly one place. The empty
// identifier is not the server.
//
// # Encodings
//
// ID implements encoding.TextMarshaler (lowercase hex, used by JSON)
// and encoding.BinaryMarshaler (the raw bytes, used by lib/codec, which
// encodes identifiers as CBOR byte strings). [ParseHex] and
// [ParseBase58] accept the two textual forms used in logs and tooling.
//
// All methods are safe for concurrent use: an ID never changes after
// construction and every accessor that returns a slice returns a copy.
//
// This package has no dependencies on other Bureau packages.
package compactid
