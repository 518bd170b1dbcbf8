package ignore

import (
	"strings"

	"github.com/bethropolis/struct/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Source records where an ignore rule came from.
type Source int

const (
	SourceBuiltin Source = iota
	SourceConfig
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "built-in"
	case SourceConfig:
		return "config"
	case SourceCLI:
		return "cli"
	default:
		return "unknown"
	}
}

// Rule is a single ignore pattern tagged with its source.
type Rule struct {
	Pattern string
	Source  Source
}

// Matches reports whether the rule's pattern matches an entry name.
func (r Rule) Matches(name string) bool {
	return Match(r.Pattern, name)
}

// DirectiveKind selects what a --no-ignore directive switches off.
type DirectiveKind int

const (
	DirectiveNone DirectiveKind = iota
	DirectiveAll
	DirectiveDefaults
	DirectiveConfig
	DirectiveNamed
)

// Directive is the parsed form of --no-ignore. Pattern is only meaningful
// for DirectiveNamed.
type Directive struct {
	Kind    DirectiveKind
	Pattern string
}

// ParseDirective maps "all", "defaults" and "config" (any case) to their
// kinds. Any other non-empty value names a single pattern to re-enable.
func ParseDirective(s string) Directive {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Directive{Kind: DirectiveNone}
	case "all":
		return Directive{Kind: DirectiveAll}
	case "defaults":
		return Directive{Kind: DirectiveDefaults}
	case "config":
		return Directive{Kind: DirectiveConfig}
	default:
		return Directive{Kind: DirectiveNamed, Pattern: s}
	}
}

func (d Directive) String() string {
	switch d.Kind {
	case DirectiveAll:
		return "all"
	case DirectiveDefaults:
		return "defaults"
	case DirectiveConfig:
		return "config"
	case DirectiveNamed:
		return "named(" + d.Pattern + ")"
	default:
		return "none"
	}
}

// Resolver decides whether an entry is ignored. It is built once per run
// and never mutated afterwards.
type Resolver struct {
	rules []Rule

	// disabled is set by DirectiveAll and short-circuits every check.
	disabled bool

	// Optional .gitignore layer, keyed on absolute paths.
	gitignoreRoot string
	repoIgnore    gitignore.GitIgnore

	logger utils.Logger
}
