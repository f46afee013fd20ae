package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gem/analysis"
	"gem/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a source file and report undefined or misused names",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, prog, err := parseSource(cmd, args)
		if err != nil {
			return err
		}
		return reportProblems(cmd, name, prog)
	},
}

func reportProblems(cmd *cobra.Command, name string, prog parser.Block) error {
	errs := analysis.Check(prog)
	log.Debug("checked program", "source", name, "problems", len(errs))
	if len(errs) == 0 {
		return nil
	}
	w := cmd.ErrOrStderr()
	for _, err := range errs {
		fmt.Fprintf(w, "%s: %v\n", name, err)
	}
	if len(errs) == 1 {
		return fmt.Errorf("%s: 1 problem found", name)
	}
	return fmt.Errorf("%s: %d problems found", name, len(errs))
}

func init() {
	checkCmd.Flags().Bool("strict", false, "report unknown characters, unterminated strings and bad numbers")
	rootCmd.AddCommand(checkCmd)
}
