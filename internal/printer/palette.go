package printer

import "github.com/fatih/color"

// palette holds the colour functions for one printer. With colours off
// every function returns its input unchanged.
type palette struct {
	root  func(a ...interface{}) string
	dir   func(a ...interface{}) string
	exec  func(a ...interface{}) string
	link  func(a ...interface{}) string
	match func(a ...interface{}) string
	muted func(a ...interface{}) string
	good  func(a ...interface{}) string
	warn  func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		root:  mk(color.FgCyan),
		dir:   mk(color.FgBlue, color.Bold),
		exec:  mk(color.FgGreen, color.Bold),
		link:  mk(color.FgCyan),
		match: mk(color.FgCyan, color.Bold),
		muted: mk(color.FgHiBlack),
		good:  mk(color.FgGreen),
		warn:  mk(color.FgYellow),
	}
}
