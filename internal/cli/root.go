// Package cli implements the uvmlab command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uvmlab/uvmlab/internal/config"
	"github.com/uvmlab/uvmlab/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	themeName      string
	nonInteractive bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "uvmlab",
	Short: "Interactive UVM testbench tutor",
	Long: `uvmlab teaches the UVM testbench architecture from the terminal:
an interactive block diagram, a scripted walkthrough of a transaction's
lifecycle, a sequence builder that generates SystemVerilog, and an
LLM-backed tutor chat.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if themeName != "" {
			loaded.TUI.Theme = themeName
		}
		cfg = loaded
		logging.Setup(os.Stderr, cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/uvmlab/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "TUI color theme (default, high-contrast)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail where a TTY would be required")
}

// GetConfig returns the configuration loaded for the current invocation.
func GetConfig() *config.Config {
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
