package ignore

import "github.com/bethropolis/struct/internal/utils"

// Option configures a Resolver.
type Option func(*settings)

type settings struct {
	builtin       []string
	config        []string
	cli           []string
	directive     Directive
	gitignoreRoot string
	logger        utils.Logger
}

// WithBuiltin replaces the built-in pattern list. New uses
// DefaultPatterns otherwise.
func WithBuiltin(patterns []string) Option {
	return func(s *settings) {
		s.builtin = patterns
	}
}

// WithConfigPatterns adds the patterns loaded from the user's config file.
func WithConfigPatterns(patterns []string) Option {
	return func(s *settings) {
		s.config = patterns
	}
}

// WithCLIPatterns adds the patterns given with --ignore.
func WithCLIPatterns(patterns []string) Option {
	return func(s *settings) {
		s.cli = patterns
	}
}

func WithDirective(d Directive) Option {
	return func(s *settings) {
		s.directive = d
	}
}

// WithGitignore enables the .gitignore layer for the repository
// containing root.
func WithGitignore(root string) Option {
	return func(s *settings) {
		s.gitignoreRoot = root
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
