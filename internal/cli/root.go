// Package cli wires the dispatchdash commands: the interactive dashboard,
// the headless list command and config management.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dispatchdash/internal/config"
	"dispatchdash/internal/fixtures"
)

// logger is the package-level logger for CLI operations
var logger zerolog.Logger

// dataFlags select the generated sample data
type dataFlags struct {
	seed    int64
	drivers int
	orders  int
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().Int64Var(&f.seed, "seed", fixtures.DefaultSeed, "seed for the generated sample data")
	cmd.PersistentFlags().IntVar(&f.drivers, "drivers", fixtures.DefaultDrivers, "number of sample drivers")
	cmd.PersistentFlags().IntVar(&f.orders, "orders", fixtures.DefaultOrders, "number of sample orders")
}

// NewRootCmd creates the root command. Without a subcommand it runs the
// interactive dashboard.
func NewRootCmd(version string) *cobra.Command {
	var data dataFlags

	cmd := &cobra.Command{
		Use:     "dispatchdash",
		Short:   "Terminal dashboard for drivers and orders",
		Long:    "dispatchdash: browse drivers and orders with paging, search, sorting and column reordering",
		Version: version,
		Example: rootCmdExample,
		// Usage on every RunE error hides the actual message
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, data)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default is $DISPATCHDASH_CONFIG or the user config dir)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	data.register(cmd)

	cmd.AddCommand(newListCmd(&data), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Open the dashboard with the default sample data
  dispatchdash

  # Use a larger, different sample
  dispatchdash --seed 42 --drivers 500 --orders 2000

  # Print page 2 of the orders table as JSON
  dispatchdash list --table orders --page 2 --json

  # Write a default config file
  dispatchdash config init`

// configService returns the config service selected by --config
func configService(cmd *cobra.Command) config.ConfigService {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.NewConfigServiceForPath(path, nil)
	}
	return config.NewConfigService()
}

// loadConfig loads the configuration, falling back to the defaults when
// the file cannot be used. --debug raises the log level.
func loadConfig(cmd *cobra.Command) (*config.Config, string) {
	cs := configService(cmd)
	cfg, err := cs.Load()
	warning := ""
	if err != nil {
		warning = err.Error()
		cfg = config.DefaultConfig()
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, warning
}
