// Package report prints the selections made on the demo page
package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"typeahead/internal/domain"
)

// Selection is the final value of one widget
type Selection struct {
	Widget   domain.WidgetID
	Label    string
	Multiple bool
	Value    domain.Value
}

// Write renders selections as a table to w
func Write(w io.Writer, selections []Selection) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Selections")
	t.AppendHeader(table.Row{"Widget", "Label", "Mode", "Value"})

	for _, s := range selections {
		mode := "single"
		if s.Multiple {
			mode = "multiple"
		}
		value := "-"
		if !s.Value.Empty() {
			value = strings.Join(s.Value.Labels(), ", ")
		}
		t.AppendRow(table.Row{s.Widget, s.Label, mode, value})
	}
	t.Render()
}
