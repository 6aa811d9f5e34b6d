package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "confdig.dev/pkg/confdig/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayListing renders the rows as a table.
func (s *SimpleUI) DisplayListing(ctx context.Context, rows []ListingRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(renderListingTable(rows))

	return nil
}

// DisplayProbe prints one line per configuration family.
func (s *SimpleUI) DisplayProbe(ctx context.Context, summary ProbeSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Println("root:", string(summary.Root))
	s.cmd.Println("build tool config:", yesNo(summary.BuildToolConfig))
	s.cmd.Println("type checker config:", yesNo(summary.TypeCheckerConfig))

	return nil
}

// DisplayResolution prints the located file and its contents, or a
// not-found notice when result is nil.
func (s *SimpleUI) DisplayResolution(ctx context.Context, stem string, result *m.LoadResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result == nil {
		s.cmd.Printf("no usable configuration found for %q\n", stem)
		return nil
	}

	s.cmd.Println("file:", result.FileName)
	s.cmd.Println("path:", result.RelativePath)
	s.cmd.Println("extension:", result.Extension)

	contents, err := yaml.Marshal(result.Data)
	if err != nil {
		return fmt.Errorf("rendering configuration contents: %w", err)
	}

	s.cmd.Printf("data:\n%s", indent(string(contents)))

	return nil
}

func renderListingTable(rows []ListingRow) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Class"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append([]string{row.Path, row.Class})
	}

	table.SetFooter([]string{fmt.Sprintf("total %d", len(rows)), ""})
	table.Render()

	return buf.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func indent(s string) string {
	var buf strings.Builder

	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		buf.WriteString("  ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.String()
}
