package search

// State holds search state
type State struct {
	Text  *string // nil until the first keystroke of an async widget
	Async bool
}

// InputFunc receives the search text on every change, without the selection prefix
type InputFunc func(text string)
