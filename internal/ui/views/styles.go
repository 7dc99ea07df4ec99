package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelCurrent  lipgloss.Style
	Description   lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	InputDisabled lipgloss.Style
	Prefix        lipgloss.Style
	Icon          lipgloss.Style
	Spinner       lipgloss.Style
	Dropdown      lipgloss.Style
	Row           lipgloss.Style
	RowAlt        lipgloss.Style
	RowHighlight  lipgloss.Style
	Check         lipgloss.Style
	Match         lipgloss.Style
	Empty         lipgloss.Style
	Scroll        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LabelCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Description:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			PaddingLeft(1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("33")). // blue
			PaddingLeft(1),
		InputDisabled: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Faint(true).
			PaddingLeft(1),
		Prefix:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Icon:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dropdown:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")),
		Row:          lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("235")),
		RowAlt:       lipgloss.NewStyle().Padding(0, 1),
		RowHighlight: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("24")).Bold(true),
		Check:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		Empty:        lipgloss.NewStyle().Padding(0, 1).Faint(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(1, 2),
	}
}
