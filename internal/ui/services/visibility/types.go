package visibility

// State holds the dropdown open flag and the async loading flag
type State struct {
	Open    bool
	Loading bool
	Async   bool
}
