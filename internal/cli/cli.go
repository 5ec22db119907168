// Package cli implements the pastetab command: read pasted text from a
// file, detect its table structure, and write it back as CSV, TSV, or
// another format.
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bjaus/pastetab"
)

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	cmd := newRootCommand(fs, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		logger.Errorf("Error: %v", err)
	}
	return ExitCode(err)
}

func newRootCommand(fs afero.Fs, logger *logrus.Logger) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "pastetab",
		Short: "Convert pasted tabular text into CSV/TSV",
		Long: `pastetab converts text pasted from a spreadsheet, a delimited file, or a
plain-text table aligned with spaces into CSV or TSV, e.g. to prepare
flashcard or spreadsheet import files.

Settings come from flags, PASTETAB_* environment variables, and an
optional YAML config file, in that order of priority.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(fs, cmd.Flags(), configPath, logger)
			if err != nil {
				return err
			}
			configureLogger(logger, cfg)
			return run(cmd, fs, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.String("in", "input.txt", "input file")
	flags.String("out", "output.csv", "output file")
	flags.String("sep", ",", "CSV delimiter (one character)")
	flags.Bool("tsv", false, "write TSV (tabs) instead of CSV")
	flags.String("format", "", fmt.Sprintf("output format %v (default csv)", pastetab.Formats()))
	flags.Bool("header", false, "treat the first row as a header (table, markdown, html)")
	flags.BoolP("quiet", "q", false, "suppress status output")
	flags.BoolP("verbose", "v", false, "log detection details")
	flags.StringVar(&configPath, "config", "", "YAML config file")
	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, cfg *Config, logger *logrus.Logger) error {
	text, err := readInput(fs, cfg.In)
	if err != nil {
		return err
	}
	logger.WithField("bytes", len(text)).Debugf("Read %s", cfg.In)

	det := pastetab.Analyze(text)
	entry := logger.WithFields(logrus.Fields{
		"strategy": det.Strategy.String(),
		"rows":     len(det.Table),
		"columns":  det.Table.Width(),
	})
	if det.Strategy == pastetab.StrategySniffed {
		entry = entry.WithFields(logrus.Fields{
			"delimiter": string(det.Dialect.Delimiter),
			"quote":     string(det.Dialect.Quote),
		})
	}
	entry.Debug("Detected table")

	data, err := pastetab.Marshal(cfg.OutputFormat(), det.Table, cfg.renderOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := writeOutput(fs, cfg.Out, data); err != nil {
		return err
	}

	if !cfg.Quiet {
		out := cfg.Out
		if abs, err := filepath.Abs(out); err == nil {
			out = abs
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %d rows written -> %s\n", len(det.Table), out)
	}
	return nil
}
