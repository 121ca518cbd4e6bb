// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Sgs-id inspects, compares, sorts and converts compact protocol
// identifiers taken from session captures. Identifiers are given as
// hex or base58 literals, config aliases, or the word "server", and
// printed as hex, base58, JSON or the CBOR byte string protocol
// messages carry.
package main
