package ignore

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// fnmatchSpecials are the metacharacters fnmatch understands besides '*'.
// They are escaped so that only '*' acts as a wildcard.
var fnmatchSpecials = strings.NewReplacer(`\`, `\\`, `?`, `\?`, `[`, `\[`)

// Match reports whether name matches pattern. '*' matches any run of
// characters, everything else is literal and case-sensitive. The empty
// pattern matches nothing.
func Match(pattern, name string) bool {
	if pattern == "" {
		return false
	}
	if !strings.Contains(pattern, "*") {
		return pattern == name
	}
	return fnmatch.Match(fnmatchSpecials.Replace(pattern), name, 0)
}
