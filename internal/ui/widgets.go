package ui

import (
	"github.com/cockroachdb/errors"

	"typeahead/internal/config"
	"typeahead/internal/ui/coordinator"
	"typeahead/internal/ui/logic"
)

// widgetConfig turns a configured widget into construction options
func widgetConfig(index int, wc config.WidgetConfig) (coordinator.Config, error) {
	id := wc.WidgetID(index)

	options, err := wc.Options()
	if err != nil {
		return coordinator.Config{}, errors.Wrapf(err, "widget %q", id)
	}
	value, err := wc.InitialValue(options)
	if err != nil {
		return coordinator.Config{}, errors.Wrapf(err, "widget %q", id)
	}
	filter, err := logic.Named(wc.Filter, options)
	if err != nil {
		return coordinator.Config{}, errors.Wrapf(err, "widget %q", id)
	}

	return coordinator.Config{
		ID:            id,
		Options:       options,
		Label:         wc.Label,
		Placeholder:   wc.Placeholder,
		Description:   wc.Description,
		Multiple:      wc.Multiple,
		Async:         wc.Async,
		AsyncWait:     wc.AsyncWait(),
		Value:         value,
		FilterOptions: filter,
		Loading:       wc.Loading,
		Disabled:      wc.Disabled,
		MaxRows:       wc.MaxRows,
	}, nil
}
