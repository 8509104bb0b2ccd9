package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dispatchdash/internal/config"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/ui"
)

// runDashboard runs the interactive table UI until the user quits
func runDashboard(cmd *cobra.Command, data dataFlags) error {
	cfg, warning := loadConfig(cmd)

	if err := config.InitLogger(cfg.Logging.Level, cfg.Logging.File); err != nil {
		cmd.PrintErrf("Warning: could not open log file: %v\n", err)
	}
	defer config.CloseLogFile()

	logger = config.ComponentLogger("cli")
	if warning != "" {
		logger.Warn().Str("error", warning).Msg("config unusable, using defaults")
	}

	bus := eventbus.New()
	defer bus.Close()

	tables, err := buildTables(bus, cfg, sampleStores(data))
	if err != nil {
		return err
	}

	m := ui.NewModel(bus, cfg, tables)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.SetProgram(p)

	// Debounced searches settle on a timer goroutine; hand them to the UI loop
	unsubscribe := bus.Subscribe(eventbus.EventSearchSettled, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()
	unsubscribeErr := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribeErr()

	logger.Info().
		Int64("seed", data.seed).
		Int("drivers", data.drivers).
		Int("orders", data.orders).
		Msg("starting UI")

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Msg("UI exited normally")
	return nil
}
