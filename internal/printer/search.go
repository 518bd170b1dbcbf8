package printer

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/struct/internal/search"
	"github.com/bethropolis/struct/internal/utils"
)

// SearchResult is the JSON form of a search.
type SearchResult struct {
	Pattern string         `json:"pattern"`
	Root    string         `json:"root"`
	Count   int            `json:"count"`
	Matches []search.Match `json:"matches"`
}

// PrintMatches outputs search results under rootLabel, either as full
// paths in walk order or as the pruned tree leading to each match.
func (p *Printer) PrintMatches(rootLabel, pattern string, matches []search.Match, flat bool) error {
	if p.jsonOutput {
		if matches == nil {
			matches = []search.Match{}
		}
		return p.writeJSON(SearchResult{Pattern: pattern, Root: rootLabel, Count: len(matches), Matches: matches})
	}

	if len(matches) == 0 {
		fmt.Fprintln(p.output, p.style.warn(fmt.Sprintf("no files matching '%s' found", pattern)))
		return nil
	}
	p.count += int64(len(matches))
	p.files += len(matches)

	fmt.Fprintln(p.output, p.style.good(fmt.Sprintf("found %d item(s) matching", len(matches)))+" "+p.style.root(pattern))
	fmt.Fprintln(p.output)

	if flat {
		for _, m := range matches {
			fmt.Fprintln(p.output, p.style.link(filepath.Join(rootLabel, filepath.FromSlash(m.Rel)))+p.sizeNote(m))
		}
		return nil
	}

	tree := search.BuildTree(matches)
	fmt.Fprint(p.output, tree.Render(p.style.root(rootLabel), func(m search.Match) string {
		if m.Executable {
			return p.style.exec(m.Name) + p.sizeNote(m)
		}
		return p.style.match(m.Name) + p.sizeNote(m)
	}))
	return nil
}

func (p *Printer) sizeNote(m search.Match) string {
	return p.style.muted(" (" + utils.FormatSize(m.Size) + ")")
}
