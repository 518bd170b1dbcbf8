package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/stats"
)

// Walker streams the tree under one root. It is single use: the sequence
// returned by Events yields nothing after the first iteration.
type Walker struct {
	root     string
	resolver *ignore.Resolver
	opts     WalkOptions
	tracker  *SkippedTracker

	rootEntries []os.DirEntry
	consumed    bool
}

// New validates root and reads its listing. The root path is made
// absolute with symlinks resolved so that it lines up with the git index.
func New(root string, resolver *ignore.Resolver, opts ...Option) (*Walker, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Stats == nil {
		options.Stats = stats.New(resolver, stats.WithLogger(options.Logger))
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("walker: '%s': %w", root, ErrPathNotFound)
		}
		return nil, fmt.Errorf("walker: cannot access '%s': %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: '%s': %w", root, ErrNotADirectory)
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("walker: cannot read '%s': %w", root, err)
	}

	options.Logger.Debug("walker.New: root %s, max depth %d, size skip %d, git %v",
		absRoot, options.MaxDepth, options.SizeSkip, options.Git != nil)

	return &Walker{
		root:        absRoot,
		resolver:    resolver,
		opts:        options,
		tracker:     NewSkippedTracker(32),
		rootEntries: entries,
	}, nil
}

// Root returns the resolved absolute root.
func (w *Walker) Root() string {
	return w.root
}

// Skipped returns the entries hidden or collapsed so far.
func (w *Walker) Skipped() []SkippedItem {
	return w.tracker.Items()
}

// Events returns the tree as a lazy sequence. Entries are read from disk
// as the consumer pulls; stopping early stops the walk.
func (w *Walker) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if w.consumed {
			return
		}
		w.consumed = true
		entries := w.rootEntries
		w.rootEntries = nil
		w.walkDir(w.root, entries, 1, yield)
	}
}

// step is a classified entry waiting to be emitted.
type step struct {
	event   Event
	descend bool
}

// walkDir emits one directory level. It returns false once the consumer
// has stopped.
func (w *Walker) walkDir(dir string, entries []os.DirEntry, depth int, yield func(Event) bool) bool {
	steps := w.classify(dir, entries, depth)
	for i := range steps {
		s := &steps[i]
		s.event.Last = i == len(steps)-1

		if !s.descend {
			if !yield(s.event) {
				return false
			}
			continue
		}

		children, err := os.ReadDir(s.event.Path)
		if err != nil {
			w.opts.Logger.Warn("walker: cannot read directory %s: %v", s.event.Path, err)
			w.trackError(s.event.Path, err)
			s.event.Err = err
			if !yield(s.event) {
				return false
			}
			continue
		}
		if !yield(s.event) {
			return false
		}
		if !w.walkDir(s.event.Path, children, depth+1, yield) {
			return false
		}
	}
	return true
}

// classify sorts a listing and decides what each entry becomes. Hidden
// files are dropped here so that Last lands on the final visible sibling.
func (w *Walker) classify(dir string, entries []os.DirEntry, depth int) []step {
	SortEntries(entries)
	steps := make([]step, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			steps = append(steps, w.classifyDir(path, e.Name(), depth))
			continue
		}
		if ev, ok := w.classifyFile(path, e, depth); ok {
			steps = append(steps, step{event: ev})
		}
	}
	return steps
}

func (w *Walker) classifyDir(path, name string, depth int) step {
	ev := Event{Depth: depth, Name: name, Path: path, Kind: KindNormal}

	if w.resolver.Skip(path, true) {
		w.opts.Logger.Debug("walker: %s ignored by rule, summarising", path)
		w.tracker.Track(path, ReasonIgnoredRule, true)
		return step{event: w.summarise(ev)}
	}
	if !w.opts.Git.Visible(path, true) {
		w.opts.Logger.Debug("walker: %s has no tracked files, summarising", path)
		w.tracker.Track(path, ReasonSkippedUntracked, true)
		return step{event: w.summarise(ev)}
	}

	if w.opts.SizeSkip > 0 {
		s := w.opts.Stats.Collect(path)
		if s.Size > w.opts.SizeSkip {
			w.opts.Logger.Debug("walker: %s is %d bytes, over the %d limit", path, s.Size, w.opts.SizeSkip)
			w.tracker.Track(path, ReasonSkippedSizeLimit, true)
			ev.Kind = KindSizeSkipped
			ev.Size = s.Size
			ev.HasSize = true
			return step{event: ev}
		}
	}

	descend := w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth
	return step{event: ev, descend: descend}
}

func (w *Walker) summarise(ev Event) Event {
	s := w.opts.Stats.Collect(ev.Path)
	ev.Kind = KindIgnoredSummary
	ev.Count = s.TotalFiles
	if w.opts.ShowSize {
		ev.Size = s.Size
		ev.HasSize = true
	}
	if s.TotalFiles == 0 && s.Err != nil {
		ev.Err = s.Err
	}
	return ev
}

func (w *Walker) classifyFile(path string, e os.DirEntry, depth int) (Event, bool) {
	if !w.opts.Git.Visible(path, false) {
		w.tracker.Track(path, ReasonSkippedUntracked, false)
		return Event{}, false
	}
	if w.resolver.Skip(path, false) {
		w.opts.Logger.Debug("walker: %s ignored by rule", path)
		w.tracker.Track(path, ReasonIgnoredRule, false)
		return Event{}, false
	}

	ev := Event{Depth: depth, Name: e.Name(), Path: path, Kind: KindFile}
	info, err := e.Info()
	if err != nil {
		w.opts.Logger.Warn("walker: cannot stat %s: %v", path, err)
		return ev, true
	}
	if w.opts.ShowSize {
		ev.Size = info.Size()
		ev.HasSize = true
	}
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		if target, err := os.Readlink(path); err == nil {
			ev.LinkTarget = target
		}
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		ev.Executable = true
	}
	return ev, true
}

func (w *Walker) trackError(path string, err error) {
	reason := ReasonSkippedReadError
	if errors.Is(err, fs.ErrPermission) {
		reason = ReasonSkippedPermError
	}
	w.tracker.Track(path, reason, true)
}
