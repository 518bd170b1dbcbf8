package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/struct/internal/config"
)

// ErrNoConfigFile is returned by the pattern commands when no pattern file
// location could be determined.
var ErrNoConfigFile = errors.New("no pattern file location")

func (a *App) mustStore() (*config.Store, error) {
	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNoConfigFile
	}
	return store, nil
}

// AddPattern stores a new ignore pattern.
func (a *App) AddPattern(pattern string) error {
	store, err := a.mustStore()
	if err != nil {
		return err
	}
	if !store.Add(pattern) {
		fmt.Fprintf(a.Output, "pattern '%s' is already in %s\n", pattern, store.Path())
		return nil
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "added '%s' to %s\n", pattern, store.Path())
	return nil
}

// RemovePattern deletes a stored pattern.
func (a *App) RemovePattern(pattern string) error {
	store, err := a.mustStore()
	if err != nil {
		return err
	}
	if !store.Remove(pattern) {
		return fmt.Errorf("pattern '%s' not found in %s", pattern, store.Path())
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "removed '%s' from %s\n", pattern, store.Path())
	return nil
}

// ListPatterns prints the stored patterns, one per line.
func (a *App) ListPatterns() error {
	store, err := a.mustStore()
	if err != nil {
		return err
	}
	patterns := store.Patterns()
	if len(patterns) == 0 {
		fmt.Fprintf(a.Output, "no patterns in %s\n", store.Path())
		return nil
	}
	for _, p := range patterns {
		fmt.Fprintln(a.Output, p)
	}
	return nil
}

// ClearPatterns removes every stored pattern.
func (a *App) ClearPatterns() error {
	store, err := a.mustStore()
	if err != nil {
		return err
	}
	n := len(store.Patterns())
	store.Clear()
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "cleared %d patterns from %s\n", n, store.Path())
	return nil
}
