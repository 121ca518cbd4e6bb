// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sgs/lib/codec"
	"github.com/bureau-foundation/sgs/lib/compactid"
	"github.com/bureau-foundation/sgs/lib/config"
)

// parseCommandFlags parses a subcommand's flags. A nil error with
// done set means help was printed and the command should return.
func (a *app) parseCommandFlags(flagSet *pflag.FlagSet, usage string, args []string) (done bool, err error) {
	flagSet.SetOutput(a.stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: sgs-id %s\n\nFlags:\n", usage)
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, Validation("%w", err)
	}
	return false, nil
}

// inspectRecord is the JSON form of inspect output.
type inspectRecord struct {
	ID      compactid.ID `json:"id"`
	Base58  string       `json:"base58"`
	Length  int          `json:"length"`
	Server  bool         `json:"server"`
	Aliases []string     `json:"aliases,omitempty"`
}

func runInspect(a *app, args []string) error {
	flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	if done, err := a.parseCommandFlags(flagSet, "inspect [id...]", args); done || err != nil {
		return err
	}

	ids, err := a.resolveIDs(flagSet.Args(), true)
	if err != nil {
		return err
	}

	if a.format == config.FormatJSON {
		encoder := json.NewEncoder(a.stdout)
		for _, id := range ids {
			record := inspectRecord{
				ID:      id,
				Base58:  id.Base58(),
				Length:  id.Len(),
				Server:  id.IsServer(),
				Aliases: a.config.AliasesFor(id),
			}
			if err := encoder.Encode(record); err != nil {
				return Internal("writing inspect output: %w", err)
			}
		}
		return nil
	}

	styles := newInspectStyles(a.stdout, a.styled)
	for index, id := range ids {
		if index > 0 {
			fmt.Fprintln(a.stdout)
		}

		hexText, base58Text := id.String(), id.Base58()
		if id.IsZero() {
			hexText, base58Text = "(empty)", "(empty)"
		}
		styles.field(a.stdout, "id", hexText, styles.value)
		styles.field(a.stdout, "base58", base58Text, styles.value)
		styles.field(a.stdout, "length", fmt.Sprint(id.Len()), styles.value)
		if id.IsServer() {
			styles.field(a.stdout, "server", "true", styles.server)
		} else {
			styles.field(a.stdout, "server", "false", styles.faint)
		}
		aliases := a.config.AliasesFor(id)
		if len(aliases) == 0 {
			styles.field(a.stdout, "aliases", "-", styles.faint)
		} else {
			styles.field(a.stdout, "aliases", strings.Join(aliases, ", "), styles.value)
		}
	}
	return nil
}

func runCompare(a *app, args []string) error {
	flagSet := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	if done, err := a.parseCommandFlags(flagSet, "compare <a> <b>", args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 2 {
		return Validation("compare takes exactly two identifiers, got %d", flagSet.NArg())
	}

	ids, err := a.resolveIDs(flagSet.Args(), false)
	if err != nil {
		return err
	}
	if len(ids) != 2 {
		return Validation("compare takes exactly two identifiers, got %d", len(ids))
	}

	result := compactid.Compare(ids[0], ids[1])
	a.logger.Debug("compared identifiers", "a", ids[0].String(), "b", ids[1].String(), "result", result)
	switch {
	case result < 0:
		fmt.Fprintln(a.stdout, "<")
	case result > 0:
		fmt.Fprintln(a.stdout, ">")
	default:
		fmt.Fprintln(a.stdout, "=")
	}
	return nil
}

func runSort(a *app, args []string) error {
	var unique bool
	flagSet := pflag.NewFlagSet("sort", pflag.ContinueOnError)
	flagSet.BoolVar(&unique, "unique", false, "print each distinct identifier once")
	if done, err := a.parseCommandFlags(flagSet, "sort [--unique] [id...]", args); done || err != nil {
		return err
	}

	ids, err := a.resolveIDs(flagSet.Args(), true)
	if err != nil {
		return err
	}

	slices.SortFunc(ids, compactid.Compare)
	if unique {
		ids = slices.Compact(ids)
	}
	a.logger.Debug("sorted identifiers", "count", len(ids), "unique", unique)

	for _, id := range ids {
		text, err := formatID(id, a.format)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, text)
	}
	return nil
}

func runEncode(a *app, args []string) error {
	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	if done, err := a.parseCommandFlags(flagSet, "encode <id>", args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return Validation("encode takes exactly one identifier, got %d", flagSet.NArg())
	}

	id, err := a.resolveID(flagSet.Arg(0))
	if err != nil {
		return err
	}
	text, err := formatID(id, a.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}

func runDecode(a *app, args []string) error {
	var diagnose bool
	flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flagSet.BoolVar(&diagnose, "diag", false, "print CBOR diagnostic notation instead of decoding")
	if done, err := a.parseCommandFlags(flagSet, "decode [--diag] <cbor-hex>", args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return Validation("decode takes exactly one hex-encoded CBOR value, got %d", flagSet.NArg())
	}

	data, err := hex.DecodeString(flagSet.Arg(0))
	if err != nil {
		return Validation("decode input is not hex: %w", err)
	}

	if diagnose {
		notation, err := codec.Diagnose(data)
		if err != nil {
			return Validation("invalid CBOR: %w", err)
		}
		fmt.Fprintln(a.stdout, notation)
		return nil
	}

	var id compactid.ID
	if err := codec.Unmarshal(data, &id); err != nil {
		return Validation("decoding CBOR identifier: %w", err)
	}
	text, err := formatID(id, a.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}
