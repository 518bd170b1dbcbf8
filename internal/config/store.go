package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName     = "struct"
	ignoreFileName = "ignores.txt"
)

// Store is the user's list of extra ignore patterns, one per line on disk.
// It is loaded once at startup and handed to the ignore resolver as a
// value; only the add/remove/clear commands write it back.
type Store struct {
	path     string
	patterns []string
}

// DefaultIgnoreFile returns the per-user pattern file location.
func DefaultIgnoreFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, ignoreFileName), nil
}

// Load reads the pattern file at path. A missing file is an empty store.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.patterns = append(s.patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Patterns returns a copy of the stored patterns in file order.
func (s *Store) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}

// Contains reports whether pattern is stored verbatim.
func (s *Store) Contains(pattern string) bool {
	for _, p := range s.patterns {
		if p == pattern {
			return true
		}
	}
	return false
}

// Add appends pattern. It returns false when the pattern is empty or
// already present.
func (s *Store) Add(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || s.Contains(pattern) {
		return false
	}
	s.patterns = append(s.patterns, pattern)
	return true
}

// Remove deletes every copy of pattern and reports whether one existed.
func (s *Store) Remove(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	kept := s.patterns[:0]
	removed := false
	for _, p := range s.patterns {
		if p == pattern {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.patterns = kept
	return removed
}

// Clear drops every pattern.
func (s *Store) Clear() {
	s.patterns = nil
}

// Save writes the store back, creating the parent directory if needed.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("config: store has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("config: creating %s: %w", filepath.Dir(s.path), err)
	}

	var b strings.Builder
	for _, p := range s.patterns {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", s.path, err)
	}
	return nil
}
