// Package search finds files by name pattern anywhere under a root,
// regardless of ignore rules.
package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/utils"
	"github.com/bethropolis/struct/internal/walker"
)

// Match is a file or symlink whose name matched the pattern.
type Match struct {
	Path  string `json:"path"`
	Rel   string `json:"rel"` // slash separated, relative to the search root
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Size  int64  `json:"size"`
	Link  bool   `json:"link,omitempty"`

	Executable bool `json:"executable,omitempty"`
}

type options struct {
	logger utils.Logger
}

// Option configures Search.
type Option func(*options)

// WithLogger sets the logger used for unreadable directories.
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		o.logger = utils.OrNoop(logger)
	}
}

// Search walks root depth-first in display order and returns every file
// whose name matches pattern. Directories are always entered; maxDepth
// bounds the depth of returned entries, 0 meaning unbounded. A file root
// is its own single candidate.
func Search(root, pattern string, maxDepth int, opts ...Option) ([]Match, error) {
	o := options{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("search: failed to get absolute path for '%s': %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("search: '%s': %w", root, walker.ErrPathNotFound)
		}
		return nil, fmt.Errorf("search: cannot access '%s': %w", root, err)
	}

	if !info.IsDir() {
		name := filepath.Base(absRoot)
		if !ignore.Match(pattern, name) {
			return nil, nil
		}
		return []Match{{Path: absRoot, Rel: name, Name: name, Depth: 0, Size: info.Size(), Executable: isExec(info.Mode())}}, nil
	}

	s := &searcher{pattern: pattern, maxDepth: maxDepth, root: absRoot, logger: o.logger}
	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("search: cannot read '%s': %w", root, err)
	}
	s.visit(absRoot, entries, 1)
	o.logger.Debug("search.Search: %d matches for %q under %s", len(s.matches), pattern, absRoot)
	return s.matches, nil
}

type searcher struct {
	pattern  string
	maxDepth int
	root     string
	logger   utils.Logger
	matches  []Match
}

func (s *searcher) visit(dir string, entries []os.DirEntry, depth int) {
	walker.SortEntries(entries)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if s.maxDepth > 0 && depth >= s.maxDepth {
				continue
			}
			children, err := os.ReadDir(path)
			if err != nil {
				s.logger.Warn("search: cannot read directory %s: %v", path, err)
				continue
			}
			s.visit(path, children, depth+1)
			continue
		}
		if !ignore.Match(s.pattern, e.Name()) {
			continue
		}
		s.matches = append(s.matches, s.match(path, e, depth))
	}
}

func (s *searcher) match(path string, e os.DirEntry, depth int) Match {
	m := Match{Path: path, Name: e.Name(), Depth: depth}
	if rel, err := filepath.Rel(s.root, path); err == nil {
		m.Rel = filepath.ToSlash(rel)
	} else {
		m.Rel = e.Name()
	}
	info, err := e.Info()
	if err != nil {
		s.logger.Warn("search: cannot stat %s: %v", path, err)
		return m
	}
	m.Size = info.Size()
	m.Link = info.Mode()&fs.ModeSymlink != 0
	m.Executable = isExec(info.Mode())
	return m
}

func isExec(mode fs.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
