package gitfilter

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Filter gates entries on git-tracked status. A nil Filter lets
// everything through.
type Filter struct {
	oracle Oracle
}

// New wraps an Oracle.
func New(o Oracle) *Filter {
	return &Filter{oracle: o}
}

// Visible reports whether an entry survives git-only mode: files must be
// tracked, directories must contain a tracked file.
func (f *Filter) Visible(path string, isDir bool) bool {
	if f == nil || f.oracle == nil {
		return true
	}
	if isDir {
		return f.oracle.HasTracked(path)
	}
	return f.oracle.Tracked(path)
}

// Branch returns the short name of the checked-out branch of the
// repository containing path, or "" when there is none.
func Branch(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// RepoRoot returns the worktree root of the repository containing path.
func RepoRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("gitfilter: opening repository at %s: %w", path, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("gitfilter: repository at %s has no worktree: %w", path, err)
	}
	return wt.Filesystem.Root(), nil
}
