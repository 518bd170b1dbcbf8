package utils

import "fmt"

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
)

// FormatSize renders a byte count as B, K, M or G with one decimal above
// a kilobyte, e.g. "512B", "1.5K", "20.0M".
func FormatSize(bytes int64) string {
	switch {
	case bytes < 0:
		return "0B"
	case bytes >= gib:
		return fmt.Sprintf("%.1fG", float64(bytes)/gib)
	case bytes >= mib:
		return fmt.Sprintf("%.1fM", float64(bytes)/mib)
	case bytes >= kib:
		return fmt.Sprintf("%.1fK", float64(bytes)/kib)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// MegabytesToBytes converts a --skip-large value to a byte threshold.
func MegabytesToBytes(mb int64) int64 {
	if mb <= 0 {
		return 0
	}
	return mb * mib
}
