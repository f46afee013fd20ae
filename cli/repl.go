package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"gem/analysis"
	"gem/parser"
	"gem/scanner"
)

const (
	historyFile = ".gem_history"
	prompt      = "gem> "
	replHelp    = `Enter a statement or expression to see its syntax tree.
  :tokens <src>  print the tokens of <src>
  :check         toggle name resolution
  :help          show this help
  :quit          exit`
)

var treeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

type repl struct {
	out     io.Writer
	mode    scanner.Mode
	resolve bool
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read lines interactively and print their syntax trees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &repl{out: cmd.OutOrStdout(), mode: modeFlag(cmd), resolve: cfg.Check.Resolve}
		return r.run()
	},
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (r *repl) run() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	hist := historyPath()
	if f, err := os.Open(hist); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			log.Debug("failed to read history", "path", hist, "err", err)
		}
		f.Close()
	}

	fmt.Fprintln(r.out, "gem REPL. Ctrl+D or :quit exits, :help lists commands.")
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if !r.eval(input) {
			break
		}
	}

	if hist != "" {
		if f, err := os.Create(hist); err == nil {
			if _, err := line.WriteHistory(f); err != nil {
				log.Debug("failed to write history", "path", hist, "err", err)
			}
			f.Close()
		}
	}
	return nil
}

// eval handles one line of input and reports whether the loop should go on.
func (r *repl) eval(input string) bool {
	input = strings.TrimSpace(input)
	switch {
	case input == ":quit":
		return false
	case input == ":help":
		fmt.Fprintln(r.out, replHelp)
		return true
	case input == ":check":
		r.resolve = !r.resolve
		fmt.Fprintf(r.out, "name resolution %s\n", map[bool]string{true: "on", false: "off"}[r.resolve])
		return true
	case strings.HasPrefix(input, ":tokens"):
		for _, t := range scanner.Scan(strings.TrimPrefix(input, ":tokens"), r.mode) {
			fmt.Fprintln(r.out, formatToken(t))
		}
		return true
	case strings.HasPrefix(input, ":"):
		fmt.Fprintf(r.out, "%s unknown command %s\n", errorStyle.Render("error:"), input)
		return true
	}

	prog, err := parser.ParseString(input, r.mode)
	if err != nil {
		fmt.Fprintln(r.out, errorStyle.Render("error:"), err)
		return true
	}
	fmt.Fprintln(r.out, treeStyle.Render(prog.String()))
	if r.resolve {
		for _, err := range analysis.Check(prog) {
			fmt.Fprintln(r.out, errorStyle.Render("check:"), err)
		}
	}
	return true
}

func init() {
	replCmd.Flags().Bool("strict", false, "report unknown characters, unterminated strings and bad numbers")
	rootCmd.AddCommand(replCmd)
}
