package git

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from start until it finds a git repository
func FindRepoRoot(start string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", &GitError{Command: "open", Output: "not a git repository: " + start}
		}
		path = parent
	}
}

// FindCurrentRepoRoot finds the repository containing the working directory
func FindCurrentRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRepoRoot(cwd)
}

// HasRevision checks if a revision resolves in the repository
func HasRevision(repoPath, rev string) bool {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return false
	}
	_, err = repo.ResolveRevision(plumbing.Revision(rev))
	return err == nil
}

// GitError provides better context for git failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// RevisionNotFoundError indicates a revision could not be resolved
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return "Revision not found: " + e.Revision
}
