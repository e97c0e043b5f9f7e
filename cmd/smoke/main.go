// smoke drives a real-time smoke wind tunnel animation in the terminal.
//
// Usage:
//
//	smoke                    - Run the configured simulation full screen
//	smoke run                - Same as above
//	smoke headless           - Run a fixed number of frames without a TUI
//	smoke list               - List available simulations
//
// Global flags:
//
//	--config <path>     - Path to a config YAML (default: search order)
//	--fps <rate>        - Frame rate override
//	--sim <id>          - Simulation ID override
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write diagnostics to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import simulations to register them
	_ "github.com/vovakirdan/tui-smoke/internal/sims/smoke"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSim      string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Smoke - a real-time smoke wind tunnel in your terminal",
	Long: `Smoke runs a frame-driven smoke simulation sized to your terminal.

Controls:
  Space      - Pause/resume
  Q/Ctrl+C   - Quit

Examples:
  smoke
  smoke --fps 30
  smoke --config ./my-smoke.yaml
  smoke headless --frames 300 --graph
  smoke list`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagSim, "sim", "", "Simulation ID override")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(listCmd)
}
