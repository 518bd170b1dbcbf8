// Package app wires configuration, engines and output together for one
// invocation of struct.
package app

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/struct/internal/config"
	"github.com/bethropolis/struct/internal/logger"
	"github.com/fatih/color"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

type systemClipboard struct{}

func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Output receives the rendered result. It is a file with --output and
	// a buffer with --copy.
	Output io.Writer

	stdout    io.Writer
	errOutput io.Writer
	file      *os.File
	buffer    *bytes.Buffer
	copier    Copier
}

// Option configures an App.
type Option func(*App)

// WithStdout replaces the terminal output stream.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithStderr replaces the stream used for logs and the skipped report.
func WithStderr(w io.Writer) Option {
	return func(a *App) {
		a.errOutput = w
	}
}

// WithCopier replaces the system clipboard.
func WithCopier(c Copier) Option {
	return func(a *App) {
		a.copier = c
	}
}

// New creates a new App instance. It opens the output file when one is
// configured; Close releases it.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:       cfg,
		stdout:    os.Stdout,
		errOutput: os.Stderr,
		copier:    systemClipboard{},
	}
	for _, opt := range opts {
		opt(a)
	}

	// Configure color globally
	color.NoColor = !cfg.UseColors

	a.log = logger.New(a.errOutput, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		a.log.SetLevel(cfg.LogLevel)
	}
	a.log.Debug("Log level %s", a.log.Level())

	switch {
	case cfg.OutputFile != "":
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		a.file = file
		a.Output = file
	case cfg.Copy:
		a.buffer = &bytes.Buffer{}
		a.Output = a.buffer
	default:
		a.Output = a.stdout
	}
	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Close releases the output file, if any.
func (a *App) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Run executes the mode selected in the configuration.
func (a *App) Run() error {
	a.log.Debug("Directory: %s, mode: %d, depth: %d", a.cfg.RootDir, a.cfg.Mode, a.cfg.MaxDepth)
	a.log.Debug("Color output: %v", a.cfg.UseColors)

	var err error
	switch a.cfg.Mode {
	case config.ModeSummary:
		err = a.RunSummary()
	case config.ModeSearch:
		err = a.RunSearch()
	default:
		err = a.RunTree()
	}
	if err != nil {
		return err
	}
	return a.flush()
}

func (a *App) infoLog(format string, args ...interface{}) {
	a.log.Info(format, args...)
}

// flush delivers buffered output to the clipboard. When copying fails the
// output goes to the terminal instead.
func (a *App) flush() error {
	switch {
	case a.file != nil:
		a.infoLog("Output saved to %s", a.cfg.OutputFile)
	case a.buffer != nil:
		if err := a.copier.Copy(a.buffer.String()); err != nil {
			a.log.Error("Error writing to clipboard: %v", err)
			_, werr := io.Copy(a.stdout, a.buffer)
			return werr
		}
		fmt.Fprintln(a.errOutput, "Output copied to clipboard.")
	}
	return nil
}
