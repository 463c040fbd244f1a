package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutor/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLUI emits the listing as a YAML document, one entry per source file.
type YAMLUI struct {
	cmd *cobra.Command
}

type fileListing struct {
	Path    m.Path     `yaml:"path"`
	Error   string     `yaml:"error,omitempty"`
	Mutants []m.Report `yaml:"mutants"`
}

type listing struct {
	Files []fileListing `yaml:"files"`
	Total int           `yaml:"total"`
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

// DisplayMutants writes the listing document.
func (y *YAMLUI) DisplayMutants(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := listing{Files: make([]fileListing, 0, len(results))}

	for _, result := range results {
		entry := fileListing{Path: m.Path(sourcePath(result.Source)), Mutants: result.Reports}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}

		if entry.Mutants == nil {
			entry.Mutants = []m.Report{}
		}

		doc.Files = append(doc.Files, entry)
		doc.Total += len(result.Reports)
	}

	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	return encoder.Close()
}
