package app

import (
	"errors"
	"time"

	"github.com/bethropolis/struct/internal/config"
	"github.com/bethropolis/struct/internal/printer"
	"github.com/bethropolis/struct/internal/search"
	"github.com/bethropolis/struct/internal/setup"
	"github.com/bethropolis/struct/internal/summary"
	"github.com/bethropolis/struct/internal/walker"
)

func (a *App) walkerConfig() (setup.WalkerConfig, error) {
	store, err := a.loadStore()
	if err != nil {
		return setup.WalkerConfig{}, err
	}
	return setup.FromConfig(a.cfg, store, a.log), nil
}

func (a *App) newPrinter() *printer.Printer {
	return printer.New().
		WithOutput(a.Output).
		WithColors(a.cfg.UseColors).
		WithJSON(a.cfg.JSONOutput)
}

// RunTree prints the tree view.
func (a *App) RunTree() error {
	startTime := time.Now()

	wc, err := a.walkerConfig()
	if err != nil {
		return err
	}
	resolver, walkOptions, err := setup.ConfigureWalker(wc, a.infoLog)
	if err != nil {
		return err
	}
	w, err := walker.New(a.cfg.RootDir, resolver, walkOptions...)
	if err != nil {
		return err
	}

	p := a.newPrinter()
	p.Header(a.cfg.RootDir)
	for ev := range w.Events() {
		p.PrintEvent(ev)
	}
	if err := p.Finalize(); err != nil {
		return err
	}

	dirs, files := p.Counts()
	a.infoLog("Listed %d entries (%d directories, %d files) in %v.", p.GetCount(), dirs, files, time.Since(startTime).Round(time.Millisecond))

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, w.Root(), w.Skipped(), a.errOutput)
	}
	return nil
}

// RunSummary prints the depth-0 overview.
func (a *App) RunSummary() error {
	wc, err := a.walkerConfig()
	if err != nil {
		return err
	}
	if a.cfg.JSONOutput {
		a.log.Warn("--json has no effect in summary mode")
	}
	resolver := setup.ConfigureResolver(wc, a.infoLog)
	r := summary.New(resolver,
		summary.WithOutput(a.Output),
		summary.WithColors(a.cfg.UseColors),
		summary.WithLogger(a.log),
	)
	return r.Display(a.cfg.RootDir)
}

// RunSearch prints the files matching the search pattern.
func (a *App) RunSearch() error {
	if a.cfg.SearchPattern == "" {
		return errors.New("search: empty pattern")
	}
	matches, err := search.Search(a.cfg.RootDir, a.cfg.SearchPattern, a.cfg.MaxDepth, search.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.infoLog("Found %d matches for %q.", len(matches), a.cfg.SearchPattern)
	return a.newPrinter().PrintMatches(a.cfg.RootDir, a.cfg.SearchPattern, matches, a.cfg.Flat)
}

func (a *App) loadStore() (*config.Store, error) {
	path := a.cfg.IgnoreFile
	if path == "" {
		var err error
		if path, err = config.DefaultIgnoreFile(); err != nil {
			a.log.Warn("No user pattern file: %v", err)
			return nil, nil
		}
	}
	store, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("Loaded %d patterns from %s", len(store.Patterns()), store.Path())
	return store, nil
}
