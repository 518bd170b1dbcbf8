// Package config holds the settings for one run of struct and the on-disk
// store of user ignore patterns.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Mode selects which engine a run drives.
type Mode int

const (
	ModeTree Mode = iota
	ModeSummary
	ModeSearch
)

// Config holds all application configuration settings
type Config struct {
	Mode Mode

	// Directory settings
	RootDir  string
	MaxDepth int // 0 = unbounded

	// Logging settings
	Verbose     bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Filtering settings
	GitOnly      bool
	UseGitignore bool
	CustomIgnore string // comma-separated --ignore value
	NoIgnore     string // raw --no-ignore value
	SkipLargeMB  int64
	ShowSize     bool
	IgnoreFile   string // path of the user pattern file

	// Search settings
	SearchPattern string
	Flat          bool

	// Output
	JSONOutput bool
	OutputFile string
	Copy       bool

	Version string
}

// New returns a Config with the defaults used when no flag is given.
func New() *Config {
	return &Config{
		RootDir: ".",
		Version: "1.0.0",
	}
}

// ResolveColors decides whether ANSI colours are used: never when
// disabled, never into a file or the clipboard, and only when stdout is
// a terminal.
func (c *Config) ResolveColors() {
	c.UseColors = !c.NoColor && c.OutputFile == "" && !c.Copy && !c.JSONOutput && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
