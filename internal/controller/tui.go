package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "confdig.dev/pkg/confdig/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	classStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// TUI implements UI using Bubble Tea for interactive display. Short output
// is printed directly; long listings open a pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayListing shows the rows, paging them when they do not fit the
// terminal.
func (t *TUI) DisplayListing(ctx context.Context, rows []ListingRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newListingModel(rows)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayProbe prints the probe outcome; it is always short.
func (t *TUI) DisplayProbe(ctx context.Context, summary ProbeSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("confdig probe") + "\n")
	fmt.Fprintf(&b, "  root: %s\n", summary.Root)
	fmt.Fprintf(&b, "  build tool config: %s\n", yesNo(summary.BuildToolConfig))
	fmt.Fprintf(&b, "  type checker config: %s\n", yesNo(summary.TypeCheckerConfig))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayResolution prints the located file, or a not-found notice.
func (t *TUI) DisplayResolution(ctx context.Context, stem string, result *m.LoadResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result == nil {
		_, err := fmt.Fprintf(t.output, "no usable configuration found for %q\n", stem)
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("confdig resolve") + "\n")
	fmt.Fprintf(&b, "  file: %s\n", result.FileName)
	fmt.Fprintf(&b, "  path: %s\n", result.RelativePath)
	fmt.Fprintf(&b, "  extension: %s\n", result.Extension)
	fmt.Fprintf(&b, "  data: %v\n", result.Data)

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// listingModel is the Bubble Tea model paging a flat listing.
type listingModel struct {
	rows   []ListingRow
	offset int
	width  int
	height int
}

func newListingModel(rows []ListingRow) listingModel {
	return listingModel{rows: rows}
}

// chromeLines is the title line plus the footer line.
const chromeLines = 2

func (lm listingModel) needsPagination() bool {
	return lm.height > 0 && len(lm.rows)+chromeLines > lm.height
}

func (lm listingModel) pageSize() int {
	size := lm.height - chromeLines
	if size < 1 {
		return 1
	}

	return size
}

func (lm listingModel) maxOffset() int {
	max := len(lm.rows) - lm.pageSize()
	if max < 0 {
		return 0
	}

	return max
}

// Init implements tea.Model.
func (lm listingModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (lm listingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.width = msg.Width
		lm.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return lm, tea.Quit
		case "up", "k":
			lm.offset--
		case "down", "j":
			lm.offset++
		case "pgup", "b":
			lm.offset -= lm.pageSize()
		case "pgdown", "f", " ":
			lm.offset += lm.pageSize()
		case "home", "g":
			lm.offset = 0
		case "end", "G":
			lm.offset = lm.maxOffset()
		}
	}

	if lm.offset < 0 {
		lm.offset = 0
	}

	if lm.offset > lm.maxOffset() {
		lm.offset = lm.maxOffset()
	}

	return lm, nil
}

// View implements tea.Model.
func (lm listingModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("confdig list (%d entries)", len(lm.rows))) + "\n")

	end := len(lm.rows)
	if lm.needsPagination() {
		end = lm.offset + lm.pageSize()
		if end > len(lm.rows) {
			end = len(lm.rows)
		}
	}

	for _, row := range lm.rows[lm.offset:end] {
		b.WriteString("  " + row.Path)

		if row.Class != "" {
			b.WriteString("  " + classStyle.Render("["+row.Class+"]"))
		}

		b.WriteByte('\n')
	}

	if lm.needsPagination() {
		b.WriteString(footerStyle.Render(fmt.Sprintf("%d-%d/%d  j/k scroll  q quit", lm.offset+1, end, len(lm.rows))) + "\n")
	}

	return b.String()
}
