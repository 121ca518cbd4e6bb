// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// messages that carry compact identifiers.
//
// Two serialization formats are in use with a clear boundary:
//
//   - JSON for human-facing output: sgs-id --format json, logs, and
//     configuration files. Identifiers appear as lowercase hex strings
//     via encoding.TextMarshaler.
//   - CBOR for protocol messages handed to the transport. Identifiers
//     appear as CBOR byte strings via encoding.BinaryMarshaler, so a
//     one-byte session ID costs two bytes on the wire.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical message always produces identical bytes, which keeps
// captures diffable and lets tests compare encodings directly.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(message)
//	err = codec.Unmarshal(data, &message)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tag Rules
//
//   - `cbor` tag: the type is only ever serialized as CBOR.
//   - `json` tag: the type may be serialized as both JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags when `cbor` tags are absent.
//
// Never use both tags on the same field.
package codec
