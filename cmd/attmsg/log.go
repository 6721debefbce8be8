package main

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.commitmsg/internal/app"
	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type logOptions struct {
	repo        string
	base        string
	head        string
	limit       int
	onlyValid   bool
	strict      bool
	interactive bool
	format      string
}

func newLogCmd(e *env) *cobra.Command {
	var opts logOptions

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Parse every commit message in a range (base..head)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, e, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "Repository path (default: current directory)")
	cmd.Flags().StringVar(&opts.base, "base", "", "Exclude commits reachable from this revision (default: git.base from config)")
	cmd.Flags().StringVar(&opts.head, "head", "", "Revision to start from (default: git.revision from config)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of commits (default: git.limit from config)")
	cmd.Flags().BoolVar(&opts.onlyValid, "only-valid", false, "Only print commits that parsed successfully")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error if any commit fails to parse")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the commits in a TUI")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "Output format: text, json or yaml")

	return cmd
}

// rangeOptions merges flags over config defaults
func (o logOptions) rangeOptions(cfg *config.Config) git.RangeOptions {
	r := git.RangeOptions{
		Base:  cfg.Git.Base,
		Head:  cfg.Git.Revision,
		Limit: cfg.Git.Limit,
	}
	if o.base != "" {
		r.Base = o.base
	}
	if o.head != "" {
		r.Head = o.head
	}
	if o.limit > 0 {
		r.Limit = o.limit
	}
	return r
}

func runLog(cmd *cobra.Command, e *env, opts logOptions) error {
	format, err := e.resolveFormat(opts.format)
	if err != nil {
		return err
	}

	root, err := repoRoot(opts.repo)
	if err != nil {
		return err
	}
	rangeOpts := opts.rangeOptions(e.cfg)
	e.logger.Debug("walking commits",
		zap.String("repo", root),
		zap.String("base", rangeOpts.Base),
		zap.String("head", rangeOpts.Head),
		zap.Int("limit", rangeOpts.Limit),
	)

	if opts.interactive {
		p := tea.NewProgram(app.New(e.cfg, e.parser, root, rangeOpts), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	}

	commits, err := git.ParseRange(root, rangeOpts, e.parser)
	if err != nil {
		return err
	}

	invalid := 0
	for _, c := range commits {
		if !c.OK() {
			invalid++
			e.logger.Debug("commit message rejected", zap.String("hash", c.Hash), zap.Error(c.Err))
		}
	}

	shown := commits
	if opts.onlyValid {
		shown = filterValid(commits)
	}

	var out string
	switch format {
	case config.FormatJSON:
		out, err = ui.RenderJSON(ui.CommitDocs(shown))
	case config.FormatYAML:
		out, err = ui.RenderYAML(ui.CommitDocs(shown))
	default:
		out = ui.RenderCommitList(shown)
	}
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if opts.strict && invalid > 0 {
		return fmt.Errorf("%d of %d commits have an invalid message: %w", invalid, len(commits), errInvalidCommits)
	}
	return nil
}

var errInvalidCommits = errors.New("invalid commit messages in range")

func filterValid(commits []models.ParsedCommit) []models.ParsedCommit {
	valid := make([]models.ParsedCommit, 0, len(commits))
	for _, c := range commits {
		if c.OK() {
			valid = append(valid, c)
		}
	}
	return valid
}
