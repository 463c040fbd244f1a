// Package controller provides output adapters for displaying mutation listings.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Format selects how listings are rendered.
type Format string

// Available output formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a format name, case-insensitively. Empty means table.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %s or %s)", name, FormatTable, FormatYAML)
	}
}

// UI displays the mutants found in a set of source files.
// Implementations can use different output methods (table, yaml).
type UI interface {
	DisplayMutants(ctx context.Context, results []m.FileResult) error
}

// NewUI returns the UI for format, writing to the command's output.
func NewUI(cmd *cobra.Command, format Format, showDiff bool) UI {
	if format == FormatYAML {
		return NewYAMLUI(cmd)
	}

	return NewSimpleUI(cmd, showDiff)
}
