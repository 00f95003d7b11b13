package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wesen/pick/internal/config"
	"github.com/wesen/pick/internal/logging"
	"github.com/wesen/pick/internal/pickui"
	"github.com/wesen/pick/internal/sink"
	"github.com/wesen/pick/pkg/grid"
	"github.com/wesen/pick/pkg/tableview"
)

type rootOptions struct {
	configPath  string
	delimiter   string
	output      string
	logFile     string
	noClipboard bool
	debug       bool
}

func newRootCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [input]",
		Short: "Interactively pick cells from a table",
		Long: `Interactively lets the user pick cells in a table read from a file or
standard input. Columns are split on the delimiter (any whitespace by
default); lines are always rows.

On enter the selected cells are written one per line to the output and
copied to the clipboard. q aborts without writing anything.`,
		Example:       "  ps aux | pick\n  pick -d , data.csv -o picked.txt",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				return err
			}
			return run(cmd, args, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.delimiter, "delimiter", "d", config.Whitespace, `column delimiter; "whitespace" splits on runs of spaces and tabs`)
	f.StringVarP(&o.output, "output", "o", "", "write picked cells to this file instead of stdout")
	f.BoolVar(&o.noClipboard, "no-clipboard", false, "do not copy picked cells to the clipboard")
	f.StringVar(&o.configPath, "config", "", "YAML config file")
	f.StringVar(&o.logFile, "log-file", "", "write JSON logs to this file")
	f.BoolVar(&o.debug, "debug", false, "enable debug logging")
	return cmd
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, o *rootOptions) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("delimiter") {
		cfg.Delimiter = o.delimiter
	}
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("no-clipboard") {
		cfg.Clipboard = !o.noClipboard
	}
	if f.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if f.Changed("debug") {
		cfg.Debug = o.debug
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, cfg config.Config) error {
	lgr, flush, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer flush()
	lgr = lgr.WithValues(logging.CommandKey, cmd.Name())

	delim, err := cfg.SplitDelimiter()
	if err != nil {
		return err
	}
	g, name, err := loadGrid(args, delim, cmd.InOrStdin())
	if err != nil {
		return err
	}
	lgr.Info("grid loaded", "input", name, "rows", g.Height(), "columns", g.Columns())

	opts, closeTTY, err := programOptions(args, cfg)
	if err != nil {
		return err
	}
	defer closeTTY()

	model := pickui.NewModel(tableview.New(g), pickui.Options{
		Title:  name,
		Theme:  cfg.Theme,
		Logger: lgr,
	})
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}

	lines, confirmed := final.(pickui.Model).Result()
	if !confirmed {
		lgr.Info("aborted")
		return nil
	}
	return emit(cfg, cmd.OutOrStdout(), lines, lgr)
}

func emit(cfg config.Config, stdout io.Writer, lines []string, lgr logr.Logger) error {
	return sink.New(cfg.Output, stdout, cfg.Clipboard, lgr).Emit(lines)
}

// loadGrid reads the whole input up front. A missing argument or "-"
// means stdin.
func loadGrid(args []string, delim string, stdin io.Reader) (*grid.Grid, string, error) {
	if len(args) == 0 || args[0] == "-" {
		g, err := grid.Parse(stdin, delim)
		return g, "stdin", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	g, err := grid.Parse(f, delim)
	return g, filepath.Base(args[0]), err
}

// programOptions keeps the TUI off stdout when stdout carries the result,
// and reads keys from the controlling terminal when stdin carried the table.
func programOptions(args []string, cfg config.Config) ([]tea.ProgramOption, func(), error) {
	var opts []tea.ProgramOption
	closeTTY := func() {}

	if cfg.Output == "" || cfg.Output == "-" {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}

	stdinIsInput := len(args) == 0 || args[0] == "-"
	if stdinIsInput && !term.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, closeTTY, fmt.Errorf("open terminal for input: %w", err)
		}
		opts = append(opts, tea.WithInput(tty))
		closeTTY = func() { tty.Close() }
	}
	return opts, closeTTY, nil
}
