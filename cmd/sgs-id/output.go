// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/sgs/lib/codec"
	"github.com/bureau-foundation/sgs/lib/compactid"
	"github.com/bureau-foundation/sgs/lib/config"
)

// formatID encodes id in the requested output format. The cbor format
// prints the hex of the CBOR byte string a protocol message carries.
func formatID(id compactid.ID, format config.Format) (string, error) {
	switch format {
	case config.FormatHex:
		return id.String(), nil
	case config.FormatBase58:
		return id.Base58(), nil
	case config.FormatJSON:
		data, err := json.Marshal(id)
		if err != nil {
			return "", Internal("encoding JSON: %w", err)
		}
		return string(data), nil
	case config.FormatCBOR:
		data, err := codec.Marshal(id)
		if err != nil {
			return "", Internal("encoding CBOR: %w", err)
		}
		return hex.EncodeToString(data), nil
	default:
		return "", Validation("unknown output format %q", format)
	}
}

// useStyle decides whether output written to w gets terminal styling.
func useStyle(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return isTerminal(w)
	default:
		return false
	}
}

// inspectStyles renders inspect output. The zero value writes plain
// text.
type inspectStyles struct {
	enabled bool
	label   lipgloss.Style
	value   lipgloss.Style
	server  lipgloss.Style
	faint   lipgloss.Style
}

func newInspectStyles(w io.Writer, enabled bool) inspectStyles {
	if !enabled {
		return inspectStyles{}
	}
	// The renderer would otherwise re-detect the profile from w and
	// drop colors when --color=always is used with a pipe.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return inspectStyles{
		enabled: true,
		label:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		value:   renderer.NewStyle().Bold(true),
		server:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		faint:   renderer.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// field writes one "label: value" line.
func (s inspectStyles) field(w io.Writer, label, value string, valueStyle lipgloss.Style) {
	if !s.enabled {
		fmt.Fprintf(w, "%-8s %s\n", label+":", value)
		return
	}
	fmt.Fprintf(w, "%s %s\n", s.label.Render(fmt.Sprintf("%-8s", label+":")), valueStyle.Render(value))
}
