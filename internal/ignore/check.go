package ignore

import "path/filepath"

// IsIgnored reports whether an entry name is matched by any rule still in
// effect. Rules carry no precedence; the first match wins.
func (r *Resolver) IsIgnored(name string) bool {
	if r == nil || r.disabled {
		return false
	}
	for _, rule := range r.rules {
		if rule.Matches(name) {
			r.logger.Debug("ignore.IsIgnored: %q matched %s rule %q", name, rule.Source, rule.Pattern)
			return true
		}
	}
	return false
}

// Skip is the check used during traversal: the entry's base name against
// the rules, then the .gitignore layer when one is loaded. path should be
// absolute for the .gitignore layer to apply.
func (r *Resolver) Skip(path string, isDir bool) bool {
	if r == nil || r.disabled {
		return false
	}
	if r.IsIgnored(filepath.Base(path)) {
		return true
	}
	return r.gitignored(path, isDir)
}
