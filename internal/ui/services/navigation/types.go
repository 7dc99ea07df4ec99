package navigation

// DefaultMaxRows is the dropdown height used when none is configured
const DefaultMaxRows = 8

// State holds all navigation-related state
type State struct {
	Cursor         int // -1 when nothing is highlighted
	Length         int // size of the filtered list
	ViewportOffset int
	ViewportHeight int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)
