package ignore

import "github.com/bethropolis/struct/internal/utils"

// New builds a Resolver from the configured sources and directive.
func New(opts ...Option) *Resolver {
	s := settings{builtin: DefaultPatterns}
	for _, opt := range opts {
		opt(&s)
	}

	r := &Resolver{logger: utils.OrNoop(s.logger)}

	r.logger.Debug("ignore.New: directive %s, %d built-in, %d config, %d cli patterns",
		s.directive, len(s.builtin), len(s.config), len(s.cli))

	if s.directive.Kind == DirectiveAll {
		r.logger.Debug("ignore.New: all ignore rules disabled")
		r.disabled = true
		return r
	}

	add := func(patterns []string, source Source) {
		for _, p := range patterns {
			if p == "" {
				continue
			}
			r.rules = append(r.rules, Rule{Pattern: p, Source: source})
		}
	}
	if s.directive.Kind != DirectiveDefaults {
		add(s.builtin, SourceBuiltin)
	}
	if s.directive.Kind != DirectiveConfig {
		add(s.config, SourceConfig)
	}
	add(s.cli, SourceCLI)

	if s.directive.Kind == DirectiveNamed {
		kept := r.rules[:0]
		for _, rule := range r.rules {
			if rule.Pattern == s.directive.Pattern {
				r.logger.Debug("ignore.New: re-enabled %q (%s rule dropped)", rule.Pattern, rule.Source)
				continue
			}
			kept = append(kept, rule)
		}
		r.rules = kept
	}

	if s.gitignoreRoot != "" {
		r.loadGitignore(s.gitignoreRoot)
	}
	return r
}

// Rules returns a copy of the rules still in effect.
func (r *Resolver) Rules() []Rule {
	if r == nil {
		return nil
	}
	return append([]Rule(nil), r.rules...)
}

// Disabled reports whether the resolver was switched off with
// DirectiveAll.
func (r *Resolver) Disabled() bool {
	return r != nil && r.disabled
}
