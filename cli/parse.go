package cli

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"gem/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}

		name, prog, err := parseSource(cmd, args)
		if err != nil {
			return err
		}
		if err := writeTree(cmd.OutOrStdout(), prog, format); err != nil {
			return err
		}
		if cfg.Check.Resolve {
			return reportProblems(cmd, name, prog)
		}
		return nil
	},
}

func writeTree(w io.Writer, prog parser.Block, format string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, prog.String())
		return err
	case FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", prog)
		return err
	case FormatYAML:
		return encodeYAML(w, prog)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func init() {
	parseCmd.Flags().StringP("format", "f", FormatText, "output format: text, pretty or yaml")
	parseCmd.Flags().Bool("strict", false, "report unknown characters, unterminated strings and bad numbers")
	rootCmd.AddCommand(parseCmd)
}
