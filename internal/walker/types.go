// Package walker produces the tree view of a directory as a lazy stream of
// events, one per visible entry, in display order.
package walker

// Kind tells the printer how to render an event.
type Kind int

const (
	// KindNormal is a directory shown with its children (unless the depth
	// limit stops descent).
	KindNormal Kind = iota
	// KindIgnoredSummary is a directory collapsed to a file count.
	KindIgnoredSummary
	// KindSizeSkipped is a directory over the size threshold.
	KindSizeSkipped
	// KindFile is a file or symlink.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "dir"
	case KindIgnoredSummary:
		return "ignored"
	case KindSizeSkipped:
		return "skipped"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Event is one line of the tree. Depth is 1 for children of the root.
type Event struct {
	Depth int    `json:"depth"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Kind  Kind   `json:"-"`

	// Size is set when HasSize is true: the file size, or the subtree size
	// for summarised and size-skipped directories.
	Size    int64 `json:"size,omitempty"`
	HasSize bool  `json:"-"`

	// Count is the number of files hidden behind a KindIgnoredSummary.
	Count int `json:"count,omitempty"`

	// Last marks the final sibling of its directory.
	Last bool `json:"-"`

	Executable bool   `json:"executable,omitempty"`
	LinkTarget string `json:"link_target,omitempty"`

	// Err is set when the directory's contents could not be read.
	Err error `json:"-"`
}

// IsDir reports whether the event is for a directory.
func (e Event) IsDir() bool {
	return e.Kind != KindFile
}

// SkippedReason clarifies why a file/directory was not shown in full.
type SkippedReason string

const (
	ReasonIgnoredRule      SkippedReason = "Ignored (Rule)"
	ReasonSkippedUntracked SkippedReason = "Skipped (Not Tracked by Git)"
	ReasonSkippedSizeLimit SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedReadError SkippedReason = "Skipped (Read Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items during one walk.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items.
func (st *SkippedTracker) Items() []SkippedItem {
	return append([]SkippedItem(nil), st.items...)
}
