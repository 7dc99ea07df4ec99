// Package commands holds the cobra command tree of the typeahead demo
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/logging"
	"typeahead/internal/report"
	"typeahead/internal/ui"
)

// E2EEnv makes the page show ui.ReadyMarker for the end to end tests
const E2EEnv = "TYPEAHEAD_E2E_TEST"

type options struct {
	configPath  string
	logFile     string
	logLevel    string
	writeConfig bool
}

// New creates the root command
func New() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "typeahead",
		Short:         "Autocomplete fields with sync and async search in the terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, "config", "c", "", "TOML file describing the widgets (default: user config, else the built-in demo)")
	flags.StringVar(&o.logFile, "log-file", logging.DefaultFile, "file receiving the log")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&o.writeConfig, "write-config", false, "write the effective configuration and exit")

	return cmd
}

// loadConfig reads an explicit path strictly and falls back to the defaults otherwise
func loadConfig(svc config.ConfigService, path string) (*config.Config, error) {
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

func run(ctx context.Context, out io.Writer, o *options) error {
	closeLog, err := logging.Setup(o.logFile, o.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()

	svc := config.NewConfigServiceWithBus(bus, o.configPath)
	cfg, err := loadConfig(svc, o.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if o.writeConfig {
		if err := svc.Save(cfg); err != nil {
			return errors.Wrap(err, "write config")
		}
		path := o.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Fprintf(out, "Config written to %s\n", path)
		return nil
	}

	var modelOpts []ui.ModelOption
	if os.Getenv(E2EEnv) == "1" {
		modelOpts = append(modelOpts, ui.WithReadyMarker())
	}

	model, err := ui.NewModel(bus, cfg, modelOpts...)
	if err != nil {
		return errors.Wrap(err, "build widgets")
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	// Forward selection changes to the UI
	unsubscribe := bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Info("selection changed", "widget", event.Widget, "value", event.Value.Labels())
		}
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	log.Info("starting", "widgets", len(cfg.Widgets))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}

	report.Write(out, selections(model))
	return nil
}

func selections(model *ui.Model) []report.Selection {
	widgets := model.Widgets()
	out := make([]report.Selection, 0, len(widgets))
	for _, w := range widgets {
		value := w.Value()
		out = append(out, report.Selection{
			Widget:   w.ID(),
			Label:    w.Label(),
			Multiple: value.Multiple,
			Value:    value,
		})
	}
	return out
}
