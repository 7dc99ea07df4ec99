package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Focused  int
	Disabled []bool // per widget
	Open     bool   // dropdown of the focused widget
}

// FocusedWidget returns the index of the widget holding focus
func (c *ModelContext) FocusedWidget() int {
	return c.Focused
}

// WidgetCount returns the number of widgets on the page
func (c *ModelContext) WidgetCount() int {
	return len(c.Disabled)
}

// WidgetDisabled reports whether the widget at index is disabled
func (c *ModelContext) WidgetDisabled(index int) bool {
	if index < 0 || index >= len(c.Disabled) {
		return true
	}
	return c.Disabled[index]
}

// DropdownOpen reports whether the focused widget shows its dropdown
func (c *ModelContext) DropdownOpen() bool {
	return c.Open
}
