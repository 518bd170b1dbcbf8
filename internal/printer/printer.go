// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/bethropolis/struct/internal/utils"
	"github.com/bethropolis/struct/internal/walker"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentBar  = "│   "
	indentGap  = "    "
)

// Printer renders walker events as an indented tree, or collects them
// into a JSON document written by Finalize.
type Printer struct {
	output     io.Writer
	useColors  bool
	jsonOutput bool
	style      palette

	count int64
	dirs  int
	files int

	// lastStack holds the Last flag of each ancestor of the next line.
	lastStack []bool

	jsonRoot  *JSONEntry
	jsonStack []*JSONEntry
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
		style:     newPalette(true),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	p.style = newPalette(enabled)
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONEntry is one node of the JSON tree.
type JSONEntry struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Size       *int64       `json:"size,omitempty"`
	Ignored    int          `json:"ignored_files,omitempty"`
	Executable bool         `json:"executable,omitempty"`
	Target     string       `json:"target,omitempty"`
	Error      string       `json:"error,omitempty"`
	Children   []*JSONEntry `json:"children,omitempty"`
}

// Header prints the root line of the tree.
func (p *Printer) Header(label string) {
	if p.jsonOutput {
		p.jsonRoot = &JSONEntry{Name: label, Type: "directory"}
		p.jsonStack = []*JSONEntry{p.jsonRoot}
		return
	}
	fmt.Fprintln(p.output, p.style.root(label))
}

// PrintEvent outputs one tree line.
func (p *Printer) PrintEvent(ev walker.Event) {
	p.count++
	if ev.Kind == walker.KindFile {
		p.files++
	} else {
		p.dirs++
	}

	if p.jsonOutput {
		p.addJSON(ev)
		return
	}

	if n := ev.Depth - 1; n >= 0 && n < len(p.lastStack) {
		p.lastStack = p.lastStack[:n]
	}
	var b strings.Builder
	for _, last := range p.lastStack {
		if last {
			b.WriteString(indentGap)
		} else {
			b.WriteString(indentBar)
		}
	}
	if ev.Last {
		b.WriteString(branchLast)
	} else {
		b.WriteString(branchMid)
	}
	b.WriteString(p.label(ev))
	fmt.Fprintln(p.output, b.String())

	p.lastStack = append(p.lastStack, ev.Last)
}

func (p *Printer) label(ev walker.Event) string {
	switch ev.Kind {
	case walker.KindNormal:
		return p.style.dir(ev.Name+"/") + p.style.muted(errorNote(ev.Err))
	case walker.KindIgnoredSummary:
		return p.style.dir(ev.Name+"/") + p.style.muted(ignoredNote(ev))
	case walker.KindSizeSkipped:
		return p.style.dir(ev.Name+"/") + p.style.muted(fmt.Sprintf(" (%dMB, skipped)", ev.Size/(1024*1024)))
	}

	var name string
	switch {
	case ev.LinkTarget != "":
		name = p.style.link(ev.Name + " -> " + ev.LinkTarget)
	case ev.Executable:
		name = p.style.exec(ev.Name)
	default:
		name = ev.Name
	}
	if ev.HasSize {
		name += p.style.muted(" (" + utils.FormatSize(ev.Size) + ")")
	}
	return name
}

func ignoredNote(ev walker.Event) string {
	if ev.Err != nil && ev.Count == 0 {
		if errors.Is(ev.Err, fs.ErrPermission) {
			return " (0 files, permission denied)"
		}
		return " (0 files, unreadable)"
	}
	if ev.HasSize {
		return fmt.Sprintf(" (%s, %d files ignored)", utils.FormatSize(ev.Size), ev.Count)
	}
	return fmt.Sprintf(" (%d files ignored)", ev.Count)
}

// errorNote annotates a directory whose listing failed.
func errorNote(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrPermission):
		return " (permission denied)"
	default:
		return " (unreadable)"
	}
}

func (p *Printer) addJSON(ev walker.Event) {
	if p.jsonRoot == nil {
		p.Header(".")
	}
	entry := &JSONEntry{Name: ev.Name, Target: ev.LinkTarget, Executable: ev.Executable}
	switch ev.Kind {
	case walker.KindNormal:
		entry.Type = "directory"
	case walker.KindIgnoredSummary:
		entry.Type = "ignored"
		entry.Ignored = ev.Count
	case walker.KindSizeSkipped:
		entry.Type = "skipped"
	default:
		entry.Type = "file"
		if ev.LinkTarget != "" {
			entry.Type = "symlink"
		}
	}
	if ev.HasSize {
		size := ev.Size
		entry.Size = &size
	}
	if ev.Err != nil {
		entry.Error = ev.Err.Error()
	}

	depth := ev.Depth
	if depth < 1 {
		depth = 1
	}
	if depth > len(p.jsonStack) {
		depth = len(p.jsonStack)
	}
	p.jsonStack = p.jsonStack[:depth]
	parent := p.jsonStack[depth-1]
	parent.Children = append(parent.Children, entry)
	p.jsonStack = append(p.jsonStack, entry)
}

// Finalize completes any pending operations (writing the JSON document)
func (p *Printer) Finalize() error {
	if !p.jsonOutput {
		return nil
	}
	if p.jsonRoot == nil {
		p.Header(".")
	}
	return p.writeJSON(p.jsonRoot)
}

func (p *Printer) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("printer: marshaling JSON: %w", err)
	}
	if _, err := fmt.Fprintf(p.output, "%s\n", data); err != nil {
		return fmt.Errorf("printer: writing output: %w", err)
	}
	return nil
}

// GetCount returns the number of entries printed
func (p *Printer) GetCount() int64 {
	return p.count
}

// Counts returns how many directory and file lines were printed.
func (p *Printer) Counts() (dirs, files int) {
	return p.dirs, p.files
}
