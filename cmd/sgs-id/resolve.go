// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"strings"

	"github.com/bureau-foundation/sgs/lib/compactid"
)

// stdinArgument makes an identifier list read from stdin.
const stdinArgument = "-"

// resolveID turns one argument into an identifier. Alias names (and
// "server") take precedence over literal decoding.
func (a *app) resolveID(argument string) (compactid.ID, error) {
	if id, ok := a.config.Alias(argument); ok {
		a.logger.Debug("resolved alias", "alias", argument, "id", id.String())
		return id, nil
	}

	var id compactid.ID
	var err error
	switch a.input {
	case "base58":
		id, err = compactid.ParseBase58(argument)
	default:
		id, err = compactid.ParseHex(argument)
	}
	if err != nil {
		return compactid.ID{}, Validation("cannot parse identifier %q: %w", argument, err)
	}
	return id, nil
}

// resolveIDs resolves every argument. The argument "-", or no
// arguments at all when allowStdin is set, reads identifiers from
// stdin one per line; blank lines and lines starting with '#' are
// skipped.
func (a *app) resolveIDs(arguments []string, allowStdin bool) ([]compactid.ID, error) {
	if len(arguments) == 0 && allowStdin {
		arguments = []string{stdinArgument}
	}

	var ids []compactid.ID
	for _, argument := range arguments {
		if argument != stdinArgument {
			id, err := a.resolveID(argument)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
			continue
		}

		scanner := bufio.NewScanner(a.stdin)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			id, err := a.resolveID(line)
			if err != nil {
				return nil, Validation("stdin line %d: %w", lineNumber, err)
			}
			ids = append(ids, id)
		}
		if err := scanner.Err(); err != nil {
			return nil, Internal("reading stdin: %w", err)
		}
	}
	return ids, nil
}
