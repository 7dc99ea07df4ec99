package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/noborus/ov/oviewer"

	"typeahead/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title string
	rows  [][2]string
}

func (r *HelpRenderer) sections() []helpSection {
	binding := func(b key.Binding) [2]string {
		h := b.Help()
		return [2]string{h.Key, h.Desc}
	}

	return []helpSection{
		{
			title: "Fields",
			rows: [][2]string{
				binding(r.keys.Focus),
				binding(r.keys.NextWidget),
				binding(r.keys.PrevWidget),
				{"click", "edit the clicked field"},
			},
		},
		{
			title: "While typing",
			rows: [][2]string{
				{"text", "filter the options"},
				binding(r.keys.Down),
				binding(r.keys.Up),
				binding(r.keys.Commit),
				binding(r.keys.Dismiss),
				{"mouse", "hover highlights, click selects"},
			},
		},
		{
			title: "Selection",
			rows: [][2]string{
				{"single", "selecting replaces the value and closes the list"},
				{"multiple", "selecting toggles the option, the list stays open"},
				{"async", "results appear after typing pauses"},
			},
		},
		{
			title: "Other",
			rows: [][2]string{
				binding(r.keys.Help),
				binding(r.keys.Quit),
				binding(r.keys.ForceQuit),
			},
		},
	}
}

// RenderHelpContent renders the help information for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Typeahead Help"))
	help.WriteString("\n")

	for _, section := range r.sections() {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")

		width := 0
		for _, row := range section.rows {
			width = max(width, lipgloss.Width(row[0]))
		}
		for _, row := range section.rows {
			pad := strings.Repeat(" ", width-lipgloss.Width(row[0]))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(row[0]), pad, descStyle.Render(row[1])))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return errors.Wrap(err, "create pager")
	}

	// Do not write on exit, the TUI repaints the screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
