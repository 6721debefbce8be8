package app

import (
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type commitsLoadedResult struct {
	commits []models.ParsedCommit
	err     error
}

// loadCommitsCmd walks the commit range in the background
func loadCommitsCmd(repoPath string, opts git.RangeOptions, p *parser.Parser) tea.Cmd {
	return func() tea.Msg {
		commits, err := git.ParseRange(repoPath, opts, p)
		return commitsLoadedResult{commits: commits, err: err}
	}
}
