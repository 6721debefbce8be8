package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"
	"github.com/wahlandcase/attuned.commitmsg/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type parseOptions struct {
	file   string
	rev    string
	repo   string
	format string
}

func newParseCmd(e *env) *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse [MESSAGE]",
		Short: "Parse a single commit message",
		Long: `Parse a single commit message and print its fields.

The message is taken from, in order: the MESSAGE argument, --file (- for stdin),
--rev, piped stdin, or the configured git revision (HEAD by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, e, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the message from a file (- for stdin)")
	cmd.Flags().StringVarP(&opts.rev, "rev", "r", "", "Read the message of a git revision")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Repository path (default: current directory)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "Output format: text, json or yaml")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, e *env, opts parseOptions) error {
	format, err := e.resolveFormat(opts.format)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd, args, e, opts)
	if err != nil {
		return err
	}

	msg, err := e.parser.Parse(message)
	if err != nil {
		var formatErr *parser.InvalidFormatError
		if errors.As(err, &formatErr) {
			e.logger.Debug("commit message rejected", zap.Strings("missing", formatErr.Missing))
		}
		return err
	}

	var out string
	switch format {
	case config.FormatJSON:
		out, err = ui.RenderJSON(msg)
	case config.FormatYAML:
		out, err = ui.RenderYAML(msg)
	default:
		out = ui.RenderCommitMessage(msg, ui.RenderOptions{TaskURL: e.cfg.TaskURL})
	}
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// readMessage picks the message source
func readMessage(cmd *cobra.Command, args []string, e *env, opts parseOptions) (string, error) {
	switch {
	case len(args) == 1:
		e.logger.Debug("reading message from argument")
		return args[0], nil

	case opts.file == "-":
		e.logger.Debug("reading message from stdin")
		return readAll(cmd.InOrStdin())

	case opts.file != "":
		e.logger.Debug("reading message from file", zap.String("file", opts.file))
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil

	case opts.rev != "":
		return readRevision(e, opts.repo, opts.rev)

	case stdinPiped(cmd):
		e.logger.Debug("reading message from piped stdin")
		return readAll(cmd.InOrStdin())

	default:
		return readRevision(e, opts.repo, e.cfg.Git.Revision)
	}
}

func readRevision(e *env, repo, rev string) (string, error) {
	root, err := repoRoot(repo)
	if err != nil {
		return "", err
	}
	e.logger.Debug("reading message from git", zap.String("repo", root), zap.String("rev", rev))
	return git.ReadMessage(root, rev)
}

// repoRoot finds the repository containing path (or the working directory)
func repoRoot(path string) (string, error) {
	if path == "" {
		return git.FindCurrentRepoRoot()
	}
	return git.FindRepoRoot(path)
}

// stdinPiped reports whether the command input is something other than an interactive terminal
func stdinPiped(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	if in != os.Stdin {
		return true
	}
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
