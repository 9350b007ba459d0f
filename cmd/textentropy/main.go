// Package main provides the CLI entrypoint for textentropy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/textentropy/internal/alphabet"
	"github.com/verte-zerg/textentropy/internal/config"
	"github.com/verte-zerg/textentropy/internal/entropy"
	"github.com/verte-zerg/textentropy/internal/model"
	"github.com/verte-zerg/textentropy/internal/report"
	"github.com/verte-zerg/textentropy/internal/textfile"
)

const (
	defaultAlign = false
	defaultColor = true
)

var useBase64 bool

// configPath is replaced in tests.
var configPath = config.DefaultConfigPath

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textentropy <file>",
		Short:         "Shannon entropy and symbol frequencies of a text file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}
	rootCmd.Flags().BoolVar(&useBase64, "b64", false, "use the Base64 alphabet instead of Ukrainian Cyrillic")
	return rootCmd
}

// normalizeArgs rewrites the single-dash -b64 form, which pflag would read as
// a cluster of shorthand flags.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "--" {
			copy(out[i:], args[i:])
			break
		}
		if arg == "-b64" {
			arg = "--b64"
		}
		out[i] = arg
	}
	return out
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	alpha, err := alphabet.ByName(cfg.Alphabet)
	if err != nil {
		return err
	}

	text, err := textfile.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load text: %w", err)
	}
	stats, err := entropy.Compute(text, alpha)
	if err != nil {
		return err
	}
	opts := report.Options{
		Columns: cfg.Columns,
		Align:   cfg.Align,
		Color:   cfg.Color,
	}
	if err := report.Render(cmd.OutOrStdout(), stats, opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := model.Config{
		Alphabet: alphabet.NameCyrillic,
		Columns:  report.DefaultColumns,
		Align:    defaultAlign,
		Color:    defaultColor,
	}
	if v := fileCfg.Analyze.Alphabet; v != nil {
		cfg.Alphabet = *v
	}
	if v := fileCfg.Report.Columns; v != nil {
		cfg.Columns = *v
	}
	if v := fileCfg.Report.Align; v != nil {
		cfg.Align = *v
	}
	if v := fileCfg.Report.Color; v != nil {
		cfg.Color = *v
	}
	if cmd.Flags().Changed("b64") {
		cfg.Alphabet = alphabet.NameCyrillic
		if useBase64 {
			cfg.Alphabet = alphabet.NameBase64
		}
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Columns <= 0 {
		return fmt.Errorf("report.columns must be > 0")
	}
	if _, err := alphabet.ByName(cfg.Alphabet); err != nil {
		return fmt.Errorf("analyze.alphabet: %w", err)
	}
	return nil
}
