package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gem/parser"
	"gem/scanner"
)

var (
	cfgFile string
	verbose bool

	cfg = DefaultConfig()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "gem",
	Short: "Scanner and parser for the gem language",
	Long: `gem turns source text into tokens and syntax trees.

Commands read the named file, or standard input when no file is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		loaded, path, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if path != "" {
			log.Debug("loaded config", "path", path)
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// Main runs the command line and returns the process exit code.
func Main() int {
	if err := Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:"), err)
}

// readSource returns the contents of the file named by args, or of stdin.
func readSource(cmd *cobra.Command, args []string) (name, src string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "<stdin>", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], "", err
	}
	return args[0], string(b), nil
}

// modeFlag returns the scanner mode, letting --strict override the config.
func modeFlag(cmd *cobra.Command) scanner.Mode {
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return scanner.Strict
		}
		return scanner.Permissive
	}
	return cfg.Mode()
}

func parseSource(cmd *cobra.Command, args []string) (string, parser.Block, error) {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return name, parser.Block{}, err
	}
	mode := modeFlag(cmd)
	prog, err := parser.ParseString(src, mode)
	if err != nil {
		return name, parser.Block{}, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("parsed program", "source", name, "statements", len(prog.Stmts), "strict", mode == scanner.Strict)
	return name, prog, nil
}
