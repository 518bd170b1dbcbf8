// Package ignore decides which directory entries are noise.
//
// A Resolver merges built-in defaults, patterns from the user's config file
// and patterns given on the command line, each tagged with its source. A
// single --no-ignore directive can then drop a whole source, drop every rule
// with a given text, or switch the resolver off entirely. Optionally the
// repository's .gitignore files are honoured as an extra, path-based layer.
// It uses the functional options pattern for configuration.
package ignore

import "strings"

// SplitPatterns splits a comma-separated pattern list into trimmed,
// non-empty patterns.
func SplitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// CreateDisabledResolver returns a resolver that ignores nothing.
func CreateDisabledResolver() *Resolver {
	return New(WithDirective(Directive{Kind: DirectiveAll}))
}
