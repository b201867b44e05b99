package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/netgraph/internal/config"
	"github.com/rileyhilliard/netgraph/internal/errors"
	"github.com/rileyhilliard/netgraph/internal/logger"
	"github.com/rileyhilliard/netgraph/internal/monitor"
	"github.com/rileyhilliard/netgraph/internal/netstat"
)

// Root command flags
var (
	intervalFlag    float64
	historyFlag     int
	statsFlag       bool
	noStatsFlag     bool
	autoScaleFlag   bool
	noAutoScaleFlag bool
	darkFlag        bool
	lightFlag       bool
	configFlag      string
)

// rootCmd starts the traffic dashboard when run with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "netgraph",
	Short: "Real-time network traffic monitor for your terminal",
	Long: `netgraph renders a live chart of per-interface network throughput.

Counters are sampled at a fixed interval; each tick plots the upload and
download speed of every non-loopback interface over a rolling window, with a
summary panel of totals, peaks, and per-interface detail alongside.

Examples:
  netgraph
  netgraph --interval 0.5
  netgraph --history 120 --no-stats
  netgraph --light`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		if err := monitor.Run(netstat.NewSystemSource(), opts, logger.Default()); err != nil {
			return err
		}
		fmt.Println("Exiting...")
		return nil
	},
}

func init() {
	rootCmd.Flags().Float64VarP(&intervalFlag, "interval", "i", 1.0, "sampling interval in seconds")
	rootCmd.Flags().IntVarP(&historyFlag, "history", "H", 60, "samples kept per interface")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", true, "show the summary panel")
	rootCmd.Flags().BoolVar(&noStatsFlag, "no-stats", false, "hide the summary panel")
	rootCmd.Flags().BoolVar(&autoScaleFlag, "auto-scale", true, "scale the y-axis to the observed peak")
	rootCmd.Flags().BoolVar(&noAutoScaleFlag, "no-auto-scale", false, "disable y-axis auto-scaling")
	rootCmd.Flags().BoolVar(&darkFlag, "dark", false, "use the dark color palette")
	rootCmd.Flags().BoolVar(&lightFlag, "light", false, "use the light color palette")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.config/netgraph/config.yaml)")
}

// resolveOptions merges defaults, config file, and flags into dashboard
// options. Flags only override the config when explicitly set.
func resolveOptions(cmd *cobra.Command) (monitor.Options, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return monitor.Options{}, err
	}

	if cmd.Flags().Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if cmd.Flags().Changed("history") {
		cfg.History = historyFlag
	}
	if cmd.Flags().Changed("stats") {
		cfg.Stats = statsFlag
	}
	if noStatsFlag {
		cfg.Stats = false
	}
	if cmd.Flags().Changed("auto-scale") {
		cfg.AutoScale = autoScaleFlag
	}
	if noAutoScaleFlag {
		cfg.AutoScale = false
	}
	if darkFlag {
		cfg.Theme = "dark"
	}
	if lightFlag {
		cfg.Theme = "light"
	}
	if darkFlag && lightFlag {
		return monitor.Options{}, errors.New(errors.ErrConfig,
			"--dark and --light cannot be used together",
			"Pick one palette, or neither to auto-detect")
	}

	if err := cfg.Validate(); err != nil {
		return monitor.Options{}, err
	}

	return monitor.Options{
		Interval:    time.Duration(cfg.Interval * float64(time.Second)),
		HistorySize: cfg.History,
		ShowStats:   cfg.Stats,
		AutoScale:   cfg.AutoScale,
		Theme:       resolveTheme(cfg.Theme),
	}, nil
}

// resolveTheme maps a config theme name to a palette.
func resolveTheme(name string) monitor.Theme {
	switch name {
	case "dark":
		return monitor.DarkTheme()
	case "light":
		return monitor.LightTheme()
	default:
		return monitor.DetectTheme()
	}
}

// Execute runs the root command. Errors are printed with their suggestion and
// the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
