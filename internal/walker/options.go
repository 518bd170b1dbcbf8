package walker

import (
	"github.com/bethropolis/struct/internal/gitfilter"
	"github.com/bethropolis/struct/internal/stats"
	"github.com/bethropolis/struct/internal/utils"
)

// WalkOptions configures a Walker.
type WalkOptions struct {
	Logger utils.Logger

	// MaxDepth is the deepest level shown; 0 means unbounded.
	MaxDepth int

	// SizeSkip collapses directories whose total size exceeds it, in
	// bytes. 0 disables the check.
	SizeSkip int64

	ShowSize bool
	Git      *gitfilter.Filter
	Stats    *stats.Collector
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithMaxDepth limits how many levels are shown. Non-positive values mean
// no limit.
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		if depth < 0 {
			depth = 0
		}
		opts.MaxDepth = depth
	}
}

// WithSizeSkip sets the size threshold in bytes.
func WithSizeSkip(bytes int64) Option {
	return func(opts *WalkOptions) {
		if bytes < 0 {
			bytes = 0
		}
		opts.SizeSkip = bytes
	}
}

// WithShowSize attaches sizes to file and summary events.
func WithShowSize(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.ShowSize = enabled
	}
}

// WithGitFilter restricts the walk to git-tracked entries. A nil filter
// leaves the walk unrestricted.
func WithGitFilter(f *gitfilter.Filter) Option {
	return func(opts *WalkOptions) {
		opts.Git = f
	}
}

// WithStats supplies the collector used for summaries and size checks.
func WithStats(c *stats.Collector) Option {
	return func(opts *WalkOptions) {
		opts.Stats = c
	}
}
