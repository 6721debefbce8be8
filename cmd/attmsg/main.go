package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitmsg/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/logging"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"
	"github.com/wahlandcase/attuned.commitmsg/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	configPath string
	noColor    bool
	verbose    bool
}

// env is the state built once before any subcommand runs
type env struct {
	opts   globalOptions
	cfg    *config.Config
	logger *zap.Logger
	parser *parser.Parser
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{parser: parser.New()}

	rootCmd := &cobra.Command{
		Use:           "attmsg",
		Short:         "Extract structured fields from commit messages",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.opts.configPath, "config", "", "Config file (default: user config dir/attmsg.toml)")
	flags.BoolVar(&e.opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&e.opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newParseCmd(e),
		newLogCmd(e),
		newConfigCmd(e),
	)

	return rootCmd
}

// setup builds the logger and loads config; flags win over config values
func (e *env) setup() error {
	e.logger = logging.New(e.opts.verbose)

	var err error
	if e.opts.configPath != "" {
		e.cfg, err = config.LoadFrom(e.opts.configPath)
	} else {
		e.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	e.logger.Debug("config loaded", zap.String("path", e.opts.configPath), zap.String("format", e.cfg.Output.Format))

	if e.opts.noColor || !e.cfg.Output.Color {
		ui.DisableColor()
	}
	return nil
}

// resolveFormat returns the flag value when set, the configured format otherwise
func (e *env) resolveFormat(flag string) (string, error) {
	format := e.cfg.Output.Format
	if flag != "" {
		format = flag
	}
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("invalid format %q (want text, json or yaml)", format)
}
