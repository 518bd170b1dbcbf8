// Package setup turns a run configuration into the resolver, git filter
// and walker options the engines consume.
package setup

import (
	"errors"
	"fmt"

	"github.com/bethropolis/struct/internal/config"
	"github.com/bethropolis/struct/internal/gitfilter"
	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/stats"
	"github.com/bethropolis/struct/internal/utils"
	"github.com/bethropolis/struct/internal/walker"
	"github.com/go-git/go-git/v5"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a walk
type WalkerConfig struct {
	RootDir        string
	MaxDepth       int
	GitOnly        bool
	UseGitignore   bool
	CustomIgnore   string
	NoIgnore       string
	SkipLargeMB    int64
	ShowSize       bool
	ConfigPatterns []string
	Logger         utils.Logger
}

// FromConfig collects the walk settings of a run. store may be nil when
// no pattern file was loaded.
func FromConfig(cfg *config.Config, store *config.Store, log utils.Logger) WalkerConfig {
	return WalkerConfig{
		RootDir:        cfg.RootDir,
		MaxDepth:       cfg.MaxDepth,
		GitOnly:        cfg.GitOnly,
		UseGitignore:   cfg.UseGitignore,
		CustomIgnore:   cfg.CustomIgnore,
		NoIgnore:       cfg.NoIgnore,
		SkipLargeMB:    cfg.SkipLargeMB,
		ShowSize:       cfg.ShowSize,
		ConfigPatterns: store.Patterns(),
		Logger:         utils.OrNoop(log),
	}
}

// ConfigureResolver builds the ignore resolver for the run.
func ConfigureResolver(cfg WalkerConfig, infoLog InfoLogger) *ignore.Resolver {
	customPatterns := ignore.SplitPatterns(cfg.CustomIgnore)
	if len(customPatterns) > 0 {
		infoLog("Using custom ignore patterns: %v", customPatterns)
	}

	directive := ignore.ParseDirective(cfg.NoIgnore)
	if directive.Kind != ignore.DirectiveNone {
		infoLog("Ignore rules relaxed: %s", directive)
	}

	opts := []ignore.Option{
		ignore.WithLogger(cfg.Logger),
		ignore.WithConfigPatterns(cfg.ConfigPatterns),
		ignore.WithCLIPatterns(customPatterns),
		ignore.WithDirective(directive),
	}
	if cfg.UseGitignore {
		opts = append(opts, ignore.WithGitignore(gitignoreAnchor(cfg)))
	}
	return ignore.New(opts...)
}

// gitignoreAnchor is the repository root around the walk root, so that
// .gitignore files above it still apply. Outside a repository it is the
// walk root itself.
func gitignoreAnchor(cfg WalkerConfig) string {
	root, err := gitfilter.RepoRoot(cfg.RootDir)
	if err != nil {
		utils.OrNoop(cfg.Logger).Debug("setup: no repository around %s, loading .gitignore files below it: %v", cfg.RootDir, err)
		return cfg.RootDir
	}
	return root
}

// ConfigureGitFilter opens the repository around the root when git mode
// is on. Outside a repository the filter is disabled with a warning.
func ConfigureGitFilter(cfg WalkerConfig, infoLog InfoLogger) (*gitfilter.Filter, error) {
	if !cfg.GitOnly {
		return nil, nil
	}
	index, err := gitfilter.Open(cfg.RootDir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			utils.OrNoop(cfg.Logger).Warn("%s is not inside a git repository; showing all files", cfg.RootDir)
			return nil, nil
		}
		return nil, fmt.Errorf("error reading git index: %w", err)
	}
	infoLog("Showing only the %d files tracked in %s", index.Len(), index.Root())
	return gitfilter.New(index), nil
}

// ConfigureWalker sets up the resolver and walker options based on the config
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (*ignore.Resolver, []walker.Option, error) {
	resolver := ConfigureResolver(cfg, infoLog)

	filter, err := ConfigureGitFilter(cfg, infoLog)
	if err != nil {
		return nil, nil, err
	}

	walkOptions := []walker.Option{
		walker.WithLogger(cfg.Logger),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithShowSize(cfg.ShowSize),
		walker.WithGitFilter(filter),
		walker.WithStats(stats.New(resolver, stats.WithLogger(cfg.Logger))),
	}

	if cfg.SkipLargeMB > 0 {
		walkOptions = append(walkOptions, walker.WithSizeSkip(utils.MegabytesToBytes(cfg.SkipLargeMB)))
		infoLog("Collapsing directories larger than %d MB.", cfg.SkipLargeMB)
	}

	return resolver, walkOptions, nil
}
