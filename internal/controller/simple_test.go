package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutor/internal/model"
)

func sampleResults() []m.FileResult {
	return []m.FileResult{
		{
			Source: m.Source{Origin: &m.File{ShortPath: "calc/add.go", FullPath: "/src/calc/add.go"}},
			Reports: []m.Report{
				{
					ID: 0, File: "calc/add.go", Line: 4, Column: 9,
					Kind: m.KindArithmetic, Mutagen: "arithmetic-operator",
					Description: "replace + with -", Status: m.Pending.String(),
					Diff: "--- original\n+++ mutated\n@@ -4 +4 @@\n-\treturn a + b\n+\treturn a - b\n",
				},
				{
					ID: 1, File: "calc/add.go", Line: 4, Column: 9,
					Kind: m.KindArithmetic, Mutagen: "arithmetic-operator",
					Description: "replace + with *", Status: m.Ignored.String(), Reason: "legacy",
				},
			},
		},
		{
			Source: m.Source{Origin: &m.File{ShortPath: "calc/broken.go", FullPath: "/src/calc/broken.go"}},
			Err:    errors.New("parse failed"),
		},
	}
}

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return cmd
}

func TestSimpleUI_DisplayMutants(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewSimpleUI(newTestCmd(out), false)

	require.NoError(t, ui.DisplayMutants(context.Background(), sampleResults()))

	text := out.String()
	assert.Contains(t, text, "calc/add.go")
	assert.Contains(t, text, "calc/broken.go: parse failed")
	assert.NotContains(t, text, "return a - b")
}

func TestSimpleUI_DisplayMutants_WithDiff(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewSimpleUI(newTestCmd(out), true)

	require.NoError(t, ui.DisplayMutants(context.Background(), sampleResults()))

	text := out.String()
	assert.Contains(t, text, "#0 calc/add.go:4:9 replace + with - (arithmetic-operator)")
	assert.Contains(t, text, "return a - b")
	assert.Contains(t, text, "ignored: legacy")
}

func TestSimpleUI_DisplayMutants_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(newTestCmd(&bytes.Buffer{}), false)
	assert.ErrorIs(t, ui.DisplayMutants(ctx, nil), context.Canceled)
}

func TestRenderListingTable(t *testing.T) {
	table := renderListingTable(sampleResults())

	assert.Contains(t, table, "calc/add.go")
	assert.Contains(t, table, "calc/broken.go")
	assert.Equal(t, 1, countIgnored(sampleResults()[0].Reports))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{" YAML ", FormatYAML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewUI(t *testing.T) {
	cmd := newTestCmd(&bytes.Buffer{})

	assert.IsType(t, &YAMLUI{}, NewUI(cmd, FormatYAML, false))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, FormatTable, true))
}
