// Package carousel implements the full-screen work image viewer.
//
// A Controller is nil when the feature is inert (narrow viewport or no
// entries). Every method is safe to call on a nil Controller and does nothing.
package carousel

import "log/slog"

// Entry is one gallery image: its source and alt text.
type Entry struct {
	Src string
	Alt string
}

// Slot is the overlay's image display.
type Slot struct {
	Src string
	Alt string
}

// TargetKind identifies what a click landed on.
type TargetKind int

const (
	TargetNone     TargetKind = iota // Nothing the carousel handles
	TargetEntry                      // A gallery thumbnail on the page
	TargetBackdrop                   // The overlay itself, outside its controls
	TargetPrevious                   // Previous control
	TargetNext                       // Next control
	TargetClose                      // Close control
	TargetImage                      // The displayed image
)

// Target is a click destination. Index is only meaningful for TargetEntry.
type Target struct {
	Kind  TargetKind
	Index int
}

// Key is a keyboard input the carousel reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// Controller tracks the current index and overlay visibility.
type Controller struct {
	entries []Entry
	index   int
	open    bool
	slot    Slot
}

// New builds a controller over entries. It returns nil when viewportWidth
// is at or below breakpoint or there are no entries.
func New(entries []Entry, viewportWidth, breakpoint int) *Controller {
	if viewportWidth <= breakpoint || len(entries) == 0 {
		return nil
	}
	return &Controller{entries: entries}
}

// Open shows entry i. Out-of-range indices are ignored.
func (c *Controller) Open(i int) {
	if c == nil || i < 0 || i >= len(c.entries) {
		return
	}
	c.index = i
	c.slot = Slot{Src: c.entries[i].Src, Alt: c.entries[i].Alt}
	c.open = true
}

// ShowPrevious opens the previous entry, wrapping from the first to the last.
func (c *Controller) ShowPrevious() {
	if c == nil {
		return
	}
	n := len(c.entries)
	c.Open((c.index - 1 + n) % n)
}

// ShowNext opens the next entry, wrapping from the last to the first.
func (c *Controller) ShowNext() {
	if c == nil {
		return
	}
	c.Open((c.index + 1) % len(c.entries))
}

// Close hides the overlay and empties the display slot.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.open = false
	c.slot = Slot{}
}

// Click dispatches a pointer click. It reports whether the carousel
// consumed the click; a consumed click must not reach any other handler.
func (c *Controller) Click(t Target) bool {
	if c == nil {
		return false
	}

	switch t.Kind {
	case TargetEntry:
		if t.Index < 0 || t.Index >= len(c.entries) {
			return false
		}
		slog.Debug("work image clicked", "index", t.Index, "src", c.entries[t.Index].Src)
		c.Open(t.Index)
		return true
	case TargetBackdrop:
		if !c.open {
			return false
		}
		c.Close()
		return true
	case TargetPrevious:
		if !c.open {
			return false
		}
		c.ShowPrevious()
		return true
	case TargetNext:
		if !c.open {
			return false
		}
		c.ShowNext()
		return true
	case TargetClose:
		if !c.open {
			return false
		}
		c.Close()
		return true
	case TargetImage:
		return c.open
	}
	return false
}

// Key handles keyboard input. Keys are ignored while the overlay is closed.
// Reports whether the key was consumed.
func (c *Controller) Key(k Key) bool {
	if c == nil || !c.open {
		return false
	}

	switch k {
	case KeyLeft:
		c.ShowPrevious()
	case KeyRight:
		c.ShowNext()
	case KeyEscape:
		c.Close()
	default:
		return false
	}
	return true
}

// Index returns the current entry index.
func (c *Controller) Index() int {
	if c == nil {
		return 0
	}
	return c.index
}

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen() bool {
	return c != nil && c.open
}

// Slot returns what the overlay currently displays.
func (c *Controller) Slot() Slot {
	if c == nil {
		return Slot{}
	}
	return c.slot
}

// Len returns the number of entries.
func (c *Controller) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
