// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the sgs tools.
//
// Configuration is loaded from a single file specified by either the
// SGS_CONFIG environment variable (via [Load]) or a --config flag (via
// [LoadFile]). There are no fallbacks, no ~/.config discovery, and no
// automatic file search.
//
// Files with a .json or .jsonc extension are accepted as well; comments
// and trailing commas are stripped before decoding.
//
// Key exports:
//
//   - [Config] -- output format and color, log level, identifier aliases
//   - [Default] -- the base configuration a file is merged into
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Alias] -- resolves a name such as "lobby" or "server" to a
//     [compactid.ID]
package config
