package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutor/internal/model"
)

// SimpleUI prints a per-file summary table and, optionally, every mutant with its diff.
type SimpleUI struct {
	cmd      *cobra.Command
	showDiff bool
	styles   styles
}

type styles struct {
	header  lipgloss.Style
	ignored lipgloss.Style
	failed  lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		header:  r.NewStyle().Bold(true),
		ignored: r.NewStyle().Foreground(lipgloss.Color("241")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		added:   r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
		removed: r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		hunk:    r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, showDiff bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, showDiff: showDiff, styles: newStyles(cmd.OutOrStdout())}
}

// DisplayMutants prints the listing.
func (s *SimpleUI) DisplayMutants(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.showDiff {
		for _, result := range results {
			for _, report := range result.Reports {
				s.printMutant(report)
			}
		}
	}

	for _, result := range results {
		if result.Err != nil {
			s.printf("%s\n", s.styles.failed.Render(fmt.Sprintf("%s: %v", sourcePath(result.Source), result.Err)))
		}
	}

	s.printf("\n%s", renderListingTable(results))

	return nil
}

func (s *SimpleUI) printMutant(report m.Report) {
	title := fmt.Sprintf("#%d %s:%d:%d %s (%s)", report.ID, report.File, report.Line, report.Column, report.Description, report.Mutagen)
	s.printf("%s\n", s.styles.header.Render(title))

	if report.Status == m.Ignored.String() {
		s.printf("%s\n", s.styles.ignored.Render("ignored: "+report.Reason))
	}

	if report.Static {
		s.printf("%s\n", s.styles.ignored.Render("runs at package initialization"))
	}

	for line := range strings.Lines(report.Diff) {
		s.printf("%s\n", s.colorDiffLine(strings.TrimRight(line, "\n")))
	}

	s.printf("\n")
}

func (s *SimpleUI) colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return s.styles.header.Render(line)
	case strings.HasPrefix(line, "@@"):
		return s.styles.hunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.styles.added.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.styles.removed.Render(line)
	default:
		return line
	}
}

func renderListingTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mutations", "Ignored"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	var total, ignored int

	for _, result := range results {
		fileIgnored := countIgnored(result.Reports)
		table.Append([]string{
			sourcePath(result.Source),
			fmt.Sprintf("%d", len(result.Reports)),
			fmt.Sprintf("%d", fileIgnored),
		})

		total += len(result.Reports)
		ignored += fileIgnored
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", total),
		fmt.Sprintf("%d", ignored),
	})

	table.Render()

	return tableBuffer.String()
}

func countIgnored(reports []m.Report) int {
	var n int

	for _, report := range reports {
		if report.Status == m.Ignored.String() {
			n++
		}
	}

	return n
}

func sourcePath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return string(source.Origin.ShortPath)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
