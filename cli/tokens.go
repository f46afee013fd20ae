package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gem/scanner"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a source file, one per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		toks := scanner.Scan(src, modeFlag(cmd))
		log.Debug("scanned source", "source", name, "tokens", len(toks))

		w := cmd.OutOrStdout()
		for _, t := range toks {
			fmt.Fprintln(w, formatToken(t))
		}
		return nil
	},
}

func formatToken(t scanner.Token) string {
	switch t.Kind {
	case scanner.Num:
		return t.Kind.String() + "\t" + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case scanner.Str:
		return t.Kind.String() + "\t" + strconv.Quote(t.Text)
	case scanner.Ident, scanner.Illegal:
		return t.Kind.String() + "\t" + t.Text
	}
	return t.Kind.String()
}

func init() {
	tokensCmd.Flags().Bool("strict", false, "report unknown characters, unterminated strings and bad numbers")
	rootCmd.AddCommand(tokensCmd)
}
