package cli

import (
	"github.com/spf13/cobra"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/logging"
	"github.com/uvmlab/uvmlab/internal/tui"
	"github.com/uvmlab/uvmlab/internal/tutor"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the uvmlab TUI",
	Long:  "Launch the uvmlab terminal user interface.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the TUI requires an interactive terminal",
			Hint:     "run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "uvmlab --help",
		}
	}

	catalog, err := arch.LoadCatalog()
	if err != nil {
		return err
	}
	steps, err := walkthrough.LoadBuiltinSteps()
	if err != nil {
		return err
	}

	tuiConfig := tui.Config{
		Catalog: catalog,
		Steps:   steps,
	}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Theme = cfg.TUI.Theme
		tuiConfig.Tutor = tutorClientFromConfig()
	}

	return tui.Run(tuiConfig)
}

// tutorClientFromConfig builds the LLM client, or nil when no key is
// configured. The TUI degrades to catalog-only explanations without it.
func tutorClientFromConfig() tutor.Client {
	cfg := GetConfig()
	logger := logging.Component("cli")
	if cfg == nil || cfg.Tutor.APIKey == "" {
		logger.Info().Msg("tutor not configured; chat disabled")
		return nil
	}
	client, err := tutor.NewOpenAIClient(cfg.Tutor)
	if err != nil {
		logger.Warn().Err(err).Msg("tutor unavailable")
		return nil
	}
	return client
}
