// Package stats computes recursive directory aggregates without producing
// any tree output.
package stats

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/utils"
)

// IgnoredDir is an immediate subdirectory that the resolver hides.
type IgnoredDir struct {
	Name  string
	Files int
	Size  int64
}

// ExtCount is one histogram bucket.
type ExtCount struct {
	Ext   string
	Count int
}

// Summary is the aggregate for one path. For a file only Path and Size are
// set.
type Summary struct {
	Path  string
	IsDir bool
	Size  int64 // cumulative, every file below Path

	TotalFiles int
	TotalDirs  int

	// Visible counts stop at ignored subdirectories; each of those counts
	// as one visible directory.
	VisibleFiles int
	VisibleDirs  int
	VisibleSize  int64
	Extensions   map[string]int

	Ignored []IgnoredDir

	// Err is the first stat or listing failure below Path. The counts
	// exclude whatever could not be read.
	Err error
}

// Denied reports whether part of the subtree could not be read.
func (s Summary) Denied() bool {
	return s.Err != nil
}

// HasHidden reports whether filtering removed anything.
func (s Summary) HasHidden() bool {
	return s.VisibleDirs < s.TotalDirs || s.VisibleFiles < s.TotalFiles || s.VisibleSize < s.Size
}

// TopExtensions returns up to n buckets, most frequent first, ties by
// extension name. n <= 0 returns all of them.
func (s Summary) TopExtensions(n int) []ExtCount {
	out := make([]ExtCount, 0, len(s.Extensions))
	for ext, count := range s.Extensions {
		out = append(out, ExtCount{Ext: ext, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Ext < out[j].Ext
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Extension returns the lowercase extension of name without the dot, or ""
// when there is none. Dotfiles such as ".bashrc" have no extension.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// Collector computes Summaries against a resolver.
type Collector struct {
	resolver *ignore.Resolver
	logger   utils.Logger
}

// Option configures a Collector.
type Option func(*Collector)

func WithLogger(logger utils.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Collector. A nil resolver makes every entry visible.
func New(resolver *ignore.Resolver, opts ...Option) *Collector {
	c := &Collector{resolver: resolver, logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect walks path eagerly. Symlinks are never followed. Unreadable
// entries are logged and counted as empty rather than aborting.
func (c *Collector) Collect(path string) Summary {
	s := Summary{Path: path, Extensions: map[string]int{}}

	info, err := os.Lstat(path)
	if err != nil {
		c.logger.Warn("stats: cannot stat %s: %v", path, err)
		s.Err = err
		return s
	}
	if !info.IsDir() {
		s.Size = info.Size()
		return s
	}

	s.IsDir = true
	c.logger.Debug("stats.Collect: walking %s", path)
	c.walk(path, true, true, &s)
	return s
}

func (c *Collector) walk(dir string, visible, top bool, s *Summary) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.logger.Warn("stats: cannot read directory %s: %v", dir, err)
		if s.Err == nil {
			s.Err = err
		}
		return
	}

	for _, e := range entries {
		child := filepath.Join(dir, e.Name())

		if e.IsDir() {
			s.TotalDirs++
			hidden := visible && c.resolver.Skip(child, true)
			if visible {
				s.VisibleDirs++
			}

			filesBefore, sizeBefore := s.TotalFiles, s.Size
			c.walk(child, visible && !hidden, false, s)
			if hidden && top {
				s.Ignored = append(s.Ignored, IgnoredDir{
					Name:  e.Name(),
					Files: s.TotalFiles - filesBefore,
					Size:  s.Size - sizeBefore,
				})
			}
			continue
		}

		// Regular files, symlinks and anything else are leaves.
		size := c.entrySize(e, child)
		s.TotalFiles++
		s.Size += size
		if visible && !c.resolver.Skip(child, false) {
			s.VisibleFiles++
			s.VisibleSize += size
			if ext := Extension(e.Name()); ext != "" {
				s.Extensions[ext]++
			}
		}
	}
}

func (c *Collector) entrySize(e os.DirEntry, path string) int64 {
	info, err := e.Info()
	if err != nil {
		c.logger.Warn("stats: cannot stat %s: %v", path, err)
		return 0
	}
	return info.Size()
}
