package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

func init() {
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(stepsCmd)
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the testbench architecture components",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := arch.LoadCatalog()
		if err != nil {
			return err
		}

		rows := make([][]string, 0)
		for _, info := range catalog.All() {
			rows = append(rows, []string{string(info.Component), info.Label, info.Summary})
		}

		return writeTable(os.Stdout, []string{"COMPONENT", "LABEL", "SUMMARY"}, rows)
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the walkthrough steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := walkthrough.LoadBuiltinSteps()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(steps))
		for _, step := range steps {
			rows = append(rows, []string{
				fmt.Sprintf("%d", step.Index+1),
				step.Title,
				string(step.Component),
			})
		}

		return writeTable(os.Stdout, []string{"STEP", "TITLE", "COMPONENT"}, rows)
	},
}
