// Package summary renders the depth-0 overview of a directory and the
// skipped-items report.
package summary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/struct/internal/gitfilter"
	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/stats"
	"github.com/bethropolis/struct/internal/utils"
	"github.com/bethropolis/struct/internal/walker"
	"github.com/fatih/color"
)

// topTypes is how many extensions the types line lists.
const topTypes = 10

// Reporter prints one block per child of a directory with its totals,
// visible counts, file types and ignored subdirectories.
type Reporter struct {
	output    io.Writer
	resolver  *ignore.Resolver
	collector *stats.Collector
	logger    utils.Logger
	useColors bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithOutput sets the output destination
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		r.output = w
	}
}

// WithColors enables or disables colored output
func WithColors(enabled bool) Option {
	return func(r *Reporter) {
		r.useColors = enabled
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(r *Reporter) {
		r.logger = utils.OrNoop(logger)
	}
}

// New creates a Reporter that hides what resolver ignores.
func New(resolver *ignore.Resolver, opts ...Option) *Reporter {
	r := &Reporter{
		output:   os.Stdout,
		resolver: resolver,
		logger:   utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.collector = stats.New(resolver, stats.WithLogger(r.logger))
	return r
}

func (r *Reporter) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (r *Reporter) muted(s string) string {
	return r.paint(s, color.FgHiBlack)
}

// Display prints the report for root.
func (r *Reporter) Display(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("summary: failed to get absolute path for '%s': %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("summary: '%s': %w", root, walker.ErrPathNotFound)
		}
		return fmt.Errorf("summary: cannot access '%s': %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("summary: '%s': %w", root, walker.ErrNotADirectory)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("summary: cannot read '%s': %w", root, err)
	}
	walker.SortEntries(entries)

	header := r.paint(abs, color.FgCyan, color.Bold)
	if branch := gitfilter.Branch(abs); branch != "" {
		header += " " + r.muted("("+branch+")")
	}
	fmt.Fprintln(r.output, header)
	fmt.Fprintln(r.output)

	var (
		ignoredFiles int
		ignoredSize  int64
		ignoredNames []string
	)
	for _, e := range entries {
		path := filepath.Join(abs, e.Name())
		if r.resolver.Skip(path, e.IsDir()) {
			if e.IsDir() {
				s := r.collector.Collect(path)
				ignoredFiles += s.TotalFiles
				ignoredSize += s.Size
				ignoredNames = append(ignoredNames, fmt.Sprintf("%s(%d files)", e.Name(), s.TotalFiles))
				continue
			}
			ignoredFiles++
			ignoredSize += r.collector.Collect(path).Size
			ignoredNames = append(ignoredNames, e.Name())
			continue
		}

		if e.IsDir() {
			r.directoryBlock(e.Name(), r.collector.Collect(path))
		} else {
			r.fileBlock(e.Name(), path)
		}
	}

	if ignoredFiles > 0 {
		fmt.Fprintln(r.output, r.muted("── ignored (top level) ──"))
		fmt.Fprintf(r.output, "  %s · %s · %s\n",
			r.muted(strings.Join(ignoredNames, ", ")),
			r.muted(fmt.Sprintf("%d files", ignoredFiles)),
			r.muted(utils.FormatSize(ignoredSize)))
	}
	return nil
}

func (r *Reporter) line(label, value string) {
	fmt.Fprintf(r.output, "  %s %s\n", r.muted(fmt.Sprintf("%-9s", label)), value)
}

func counts(dirs, files int, size int64, keepZero bool) string {
	var parts []string
	if dirs > 0 || keepZero {
		parts = append(parts, fmt.Sprintf("%d dirs", dirs))
	}
	if files > 0 || keepZero {
		parts = append(parts, fmt.Sprintf("%d files", files))
	}
	parts = append(parts, utils.FormatSize(size))
	return strings.Join(parts, " · ")
}

func (r *Reporter) directoryBlock(name string, s stats.Summary) {
	fmt.Fprintln(r.output, r.paint(name+"/", color.FgBlue, color.Bold))
	fmt.Fprintln(r.output, "  "+r.muted(s.Path))

	if s.HasHidden() {
		r.line("total:", r.paint(counts(s.TotalDirs, s.TotalFiles, s.Size, true), color.FgYellow))
		r.line("visible:", r.paint(counts(s.VisibleDirs, s.VisibleFiles, s.VisibleSize, false), color.FgGreen))
	} else {
		r.line("total:", r.paint(counts(s.TotalDirs, s.TotalFiles, s.Size, false), color.FgYellow))
	}

	if top := s.TopExtensions(topTypes); len(top) > 0 {
		types := make([]string, 0, len(top))
		for _, ec := range top {
			types = append(types, fmt.Sprintf("%s(%d)", ec.Ext, ec.Count))
		}
		r.line("types:", r.paint(strings.Join(types, " "), color.FgCyan))
	}

	if len(s.Ignored) > 0 {
		names := make([]string, 0, len(s.Ignored))
		for _, d := range s.Ignored {
			names = append(names, fmt.Sprintf("%s(%d files)", d.Name, d.Files))
		}
		r.line("ignored:", r.muted(strings.Join(names, ", ")))
	}
	if s.Denied() {
		r.line("error:", r.muted(s.Err.Error()))
	}
	fmt.Fprintln(r.output)
}

func (r *Reporter) fileBlock(name, path string) {
	var size int64
	display := name
	if info, err := os.Lstat(path); err != nil {
		r.logger.Warn("summary: cannot stat %s: %v", path, err)
	} else {
		size = info.Size()
		if info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
			display = r.paint(name, color.FgGreen, color.Bold)
		}
	}
	fmt.Fprintln(r.output, display)
	fmt.Fprintln(r.output, "  "+r.muted(path))
	fmt.Fprintln(r.output, "  "+r.muted(utils.FormatSize(size)))
	fmt.Fprintln(r.output)
}
