package viewmodels

import (
	"strings"

	"typeahead/internal/domain"
)

// OptionRenderFunc overrides the default rendering of a dropdown row
type OptionRenderFunc func(option domain.Option) string

// OptionLines turns an option into the plain lines of its dropdown row. A text
// option is one line; a record shows its label, then every other field as
// "key: value". Records without a label show only their fields.
func OptionLines(option domain.Option, render OptionRenderFunc) []string {
	if render != nil {
		return strings.Split(render(option), "\n")
	}
	if !option.IsRecord() {
		label, _ := option.Label()
		return []string{label}
	}

	fields := option.Fields()
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Key == domain.LabelKey {
			if f.Value != "" {
				lines = append(lines, f.Value)
			}
			continue
		}
		lines = append(lines, f.Key+": "+f.Value)
	}
	return lines
}

// MatchLine returns the row line that carries the option label, "" when the
// row is custom rendered or the option has no label
func MatchLine(option domain.Option, render OptionRenderFunc) string {
	if render != nil {
		return ""
	}
	label, _ := option.Label()
	return label
}
