package ignore

// DefaultPatterns is the built-in noise list: caches, virtualenvs,
// dependency folders, VCS metadata, editor state, build output and a few
// generated files.
var DefaultPatterns = []string{
	// python
	"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache", ".tox",
	".coverage", "venv", ".venv", "env", ".env", "virtualenv", "*.egg-info",
	"*.pyc", "*.pyo", "*.pyd",
	// javascript
	"node_modules", ".npm", ".yarn", ".next", ".nuxt", "package-lock.json",
	// build output
	"dist", "build", "target", "bin", "obj",
	// vcs
	".git", ".svn", ".hg",
	// editors and OS
	".vscode", ".idea", ".DS_Store", "*.swp", "*.swo",
}
