package selection

import "typeahead/internal/domain"

// PrefixSeparator joins selected labels in front of the search text
const PrefixSeparator = " | "

// State holds selection state
type State struct {
	Multiple bool
	Selected []domain.Option // at most one entry unless Multiple
}

// ChangeFunc receives the full selection after every change
type ChangeFunc func(domain.Value)
