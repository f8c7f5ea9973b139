package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uvmlab/uvmlab/internal/sequence"
)

var compileDir string

func init() {
	compileCmd.Flags().StringVar(&compileDir, "dir", "", "compile every sequence YAML in a directory")
	rootCmd.AddCommand(compileCmd)
}

var compileCmd = &cobra.Command{
	Use:   "compile [file...]",
	Short: "Compile sequence YAML files to SystemVerilog",
	Long: `Compile one or more sequence description files into the generated
SystemVerilog sequence class and print the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := make([]*sequence.File, 0, len(args))

		for _, path := range args {
			file, err := sequence.Load(path)
			if err != nil {
				return err
			}
			files = append(files, file)
		}

		if compileDir != "" {
			fromDir, err := sequence.LoadDir(compileDir)
			if err != nil {
				return err
			}
			files = append(files, fromDir...)
		}

		if len(files) == 0 {
			return fmt.Errorf("nothing to compile: pass sequence files or --dir")
		}

		for i, file := range files {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "// %s (%s)\n", file.Name, file.Source)
			if file.Description != "" {
				fmt.Fprintf(os.Stdout, "// %s\n", file.Description)
			}
			fmt.Fprint(os.Stdout, sequence.Compile(file.Steps))
		}

		return nil
	},
}
