// Package gitfilter answers "is this path tracked by git?" for the --git
// mode. The answer comes from the repository index, read once through
// go-git.
package gitfilter

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Oracle reports git-tracked status for absolute paths.
type Oracle interface {
	// Tracked reports whether the file at path is in the index.
	Tracked(path string) bool
	// HasTracked reports whether the directory at path contains at least
	// one tracked file at any depth.
	HasTracked(dir string) bool
}

// Index is an Oracle backed by a snapshot of the tracked file list.
type Index struct {
	root  string
	files map[string]struct{}
	dirs  map[string]struct{}
}

// Open discovers the repository containing path and snapshots its index.
func Open(p string) (*Index, error) {
	repo, err := git.PlainOpenWithOptions(p, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gitfilter: opening repository at %s: %w", p, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("gitfilter: repository at %s has no worktree: %w", p, err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("gitfilter: reading index: %w", err)
	}

	names := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		names = append(names, e.Name)
	}
	return NewStatic(wt.Filesystem.Root(), names), nil
}

// NewStatic builds an Index for root from slash-separated paths relative
// to it.
func NewStatic(root string, tracked []string) *Index {
	ix := &Index{
		root:  canonical(root),
		files: make(map[string]struct{}, len(tracked)),
		dirs:  map[string]struct{}{".": {}},
	}
	for _, name := range tracked {
		name = path.Clean(filepath.ToSlash(name))
		ix.files[name] = struct{}{}
		for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
			ix.dirs[dir] = struct{}{}
		}
	}
	return ix
}

// Root returns the repository working directory.
func (ix *Index) Root() string {
	return ix.root
}

// Len returns the number of tracked files.
func (ix *Index) Len() int {
	return len(ix.files)
}

func (ix *Index) Tracked(p string) bool {
	rel, ok := ix.rel(p)
	if !ok {
		return false
	}
	_, found := ix.files[rel]
	return found
}

func (ix *Index) HasTracked(dir string) bool {
	rel, ok := ix.rel(dir)
	if !ok {
		return false
	}
	_, found := ix.dirs[rel]
	return found
}

// rel converts p to the index's slash form. Paths outside the working
// directory are reported as not ok.
func (ix *Index) rel(p string) (string, bool) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(ix.root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// canonical returns an absolute path with symlinks resolved, falling back
// to the plain absolute path.
func canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
