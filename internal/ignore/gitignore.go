package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// loadGitignore loads every .gitignore below root. Failures leave the layer
// empty; the name rules keep working.
func (r *Resolver) loadGitignore(root string) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		r.logger.Warn("ignore: failed to get absolute path for %q: %v", root, err)
		return
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}
	r.logger.Debug("ignore.loadGitignore: loading .gitignore files below %s", absRoot)

	repoMatcher, repoErr := gitignore.NewRepository(absRoot)
	if repoErr != nil {
		r.logger.Warn("ignore: error loading .gitignore files from %q: %v", absRoot, repoErr)
		if repoMatcher == nil {
			// Keep an empty matcher so lookups stay valid.
			repoMatcher = gitignore.New(nil, absRoot, nil)
		}
	}
	r.gitignoreRoot = absRoot
	r.repoIgnore = repoMatcher
}

// gitignored consults the .gitignore layer. A negated (included) match
// keeps the entry visible.
func (r *Resolver) gitignored(path string, isDir bool) (ignored bool) {
	if r.repoIgnore == nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(r.gitignoreRoot, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("ignore: gitignore matcher panicked on %q: %v", path, rec)
			ignored = false
		}
	}()

	match := r.repoIgnore.Absolute(absPath, isDir)
	if match == nil {
		return false
	}
	if match.Ignore() {
		r.logger.Debug("ignore.Skip: %q ignored by .gitignore", path)
		return true
	}
	return false
}
