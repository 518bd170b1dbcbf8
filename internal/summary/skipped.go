package summary

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/bethropolis/struct/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplaySkippedItems lists what the walk hid or collapsed, with paths
// relative to root, sorted by path.
func DisplaySkippedItems(logger Logger, root string, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR "
		}
		path := item.Path
		if rel, err := filepath.Rel(root, item.Path); err == nil {
			path = rel
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
