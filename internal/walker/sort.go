package walker

import (
	"os"
	"sort"
	"strings"
)

// SortEntries orders a directory listing for display: directories first,
// then by name ignoring case, with exact case breaking ties. Symlinks sort
// with files.
func SortEntries(entries []os.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		ni, nj := entries[i].Name(), entries[j].Name()
		if li, lj := strings.ToLower(ni), strings.ToLower(nj); li != lj {
			return li < lj
		}
		return ni < nj
	})
}
