// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sgs/lib/config"
	"github.com/bureau-foundation/sgs/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// app carries the resolved global options into each command.
type app struct {
	config *config.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// input is the decoding used for literal identifier arguments.
	input string
	// format is the output encoding.
	format config.Format
	// styled enables lipgloss styling of inspect output.
	styled bool
}

// command is one sgs-id subcommand.
type command struct {
	name    string
	summary string
	run     func(a *app, args []string) error
}

var commands = []command{
	{"inspect", "show hex, base58, length, server flag and aliases", runInspect},
	{"compare", "print <, = or > for two identifiers", runCompare},
	{"sort", "print identifiers in total order", runSort},
	{"encode", "print one identifier in --format", runEncode},
	{"decode", "decode a hex-encoded CBOR byte string", runDecode},
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var configPath string
	var formatFlag string
	var colorFlag string
	var input string
	var verbose bool

	flagSet := pflag.NewFlagSet("sgs-id", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	// Global flags stop at the command name; the command parses the rest.
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $"+config.EnvironmentVariable+", if set)")
	flagSet.StringVar(&formatFlag, "format", "", "output format: hex, base58, json, cbor (default from config: hex)")
	flagSet.StringVar(&colorFlag, "color", "", "style output: auto, always, never (default from config: auto)")
	flagSet.StringVar(&input, "input", "hex", "decoding for identifier arguments: hex or base58")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug records to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, "sgs-id")
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if formatFlag != "" {
		cfg.Output.Format = config.Format(formatFlag)
	}
	if colorFlag != "" {
		cfg.Output.Color = config.ColorMode(colorFlag)
	}
	if err := cfg.Validate(); err != nil {
		return Validation("%w", err)
	}
	if input != "hex" && input != "base58" {
		return Validation("--input must be hex or base58, got %q", input)
	}

	level, _ := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger := newCommandLogger(stderr, level)

	remaining := flagSet.Args()
	if len(remaining) == 0 {
		printHelp(stderr, flagSet)
		return Validation("no command given")
	}

	index := slices.IndexFunc(commands, func(c command) bool { return c.name == remaining[0] })
	if index < 0 {
		return Validation("unknown command %q", remaining[0])
	}
	selected := commands[index]

	a := &app{
		config: cfg,
		logger: logger.With("command", selected.name),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		input:  input,
		format: cfg.Output.Format,
		styled: useStyle(cfg.Output.Color, stdout),
	}
	a.logger.Debug("running command",
		"format", a.format,
		"input", a.input,
		"aliases", len(cfg.Aliases),
		"version", version.Short(),
		"commit", version.Commit(),
	)
	return selected.run(a, remaining[1:])
}

// loadConfig loads the --config file, else the SGS_CONFIG file, else
// the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" && os.Getenv(config.EnvironmentVariable) == "" {
		return config.Default(), nil
	}

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound("%w", err)
		}
		return nil, Validation("%w", err)
	}
	return cfg, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `sgs-id: inspect and convert compact protocol identifiers.

Identifier arguments are alias names from the config file, the word
"server", or literal values decoded with --input (hex by default). The
argument "-" reads newline-separated identifiers from stdin.

Usage:
  sgs-id [flags] <command> [command flags] [identifiers]

Commands:
`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, `
Examples:
  # Is this session the server?
  sgs-id inspect 00

  # Sort a capture's sender IDs
  cut -d' ' -f2 capture.txt | sgs-id sort --unique -

  # CBOR encoding as carried in protocol messages
  sgs-id --format cbor encode 0102

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
