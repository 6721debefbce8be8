package git

import (
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// RangeOptions selects the commits visited by ParseRange
type RangeOptions struct {
	// Base excludes every commit reachable from it; empty walks full history
	Base string
	// Head is where the walk starts
	Head string
	// Limit caps the number of commits returned (0 = unlimited)
	Limit int
}

// ReadMessage returns the full commit message at rev
func ReadMessage(repoPath, rev string) (string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", &GitError{Command: "open", Output: err.Error()}
	}

	commit, err := resolveCommit(repo, rev)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// ParseRange parses every commit in head that is not in base (base..head),
// newest first. Parse failures are recorded per commit, not returned.
func ParseRange(repoPath string, opts RangeOptions, p *parser.Parser) ([]models.ParsedCommit, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, &GitError{Command: "open", Output: err.Error()}
	}

	head := opts.Head
	if head == "" {
		head = "HEAD"
	}
	headCommit, err := resolveCommit(repo, head)
	if err != nil {
		return nil, err
	}

	// Build set of commits reachable from base
	baseCommits := make(map[plumbing.Hash]bool)
	if opts.Base != "" {
		baseCommit, err := resolveCommit(repo, opts.Base)
		if err != nil {
			return nil, err
		}
		baseIter, err := repo.Log(&git.LogOptions{From: baseCommit.Hash})
		if err != nil {
			return nil, err
		}
		err = baseIter.ForEach(func(c *object.Commit) error {
			baseCommits[c.Hash] = true
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	headIter, err := repo.Log(&git.LogOptions{From: headCommit.Hash})
	if err != nil {
		return nil, err
	}

	var commits []models.ParsedCommit
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		// Merge commits have multiple parents, keep walking every path.
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		commits = append(commits, parseCommit(c, p))
		if opts.Limit > 0 && len(commits) >= opts.Limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}

func parseCommit(c *object.Commit, p *parser.Parser) models.ParsedCommit {
	hash := c.Hash.String()[:7]
	subject := strings.TrimSpace(strings.Split(c.Message, "\n")[0])

	msg, err := p.Parse(c.Message)
	return models.NewParsedCommit(hash, subject, msg, err)
}

func resolveCommit(repo *git.Repository, rev string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: rev}
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, &GitError{Command: "cat-file", Output: err.Error()}
	}
	return commit, nil
}
