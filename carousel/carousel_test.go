package carousel

import "testing"

func threeEntries() []Entry {
	return []Entry{
		{Src: "work/a.png", Alt: "First"},
		{Src: "work/b.png", Alt: "Second"},
		{Src: "work/c.png", Alt: ""},
	}
}

func TestNewInert(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		width   int
	}{
		{"no entries", nil, 1280},
		{"narrow viewport", threeEntries(), 480},
		{"at breakpoint", threeEntries(), 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.entries, tt.width, 600)
			if c != nil {
				t.Fatalf("New() = %v, want nil", c)
			}
			// Inert controllers swallow every call.
			c.Open(0)
			c.ShowNext()
			c.ShowPrevious()
			c.Close()
			if c.Click(Target{Kind: TargetEntry, Index: 0}) {
				t.Error("inert controller consumed a click")
			}
			if c.Key(KeyRight) {
				t.Error("inert controller consumed a key")
			}
			if c.IsOpen() || c.Len() != 0 || c.Slot() != (Slot{}) {
				t.Error("inert controller reports state")
			}
		})
	}
}

func TestOpenLoadsSlot(t *testing.T) {
	c := New(threeEntries(), 1280, 600)
	c.Open(1)

	if !c.IsOpen() || c.Index() != 1 {
		t.Fatalf("open=%v index=%d, want open at 1", c.IsOpen(), c.Index())
	}
	if got := c.Slot(); got != (Slot{Src: "work/b.png", Alt: "Second"}) {
		t.Errorf("Slot() = %+v", got)
	}
}

func TestOpenIgnoresOutOfRange(t *testing.T) {
	c := New(threeEntries(), 1280, 600)
	c.Open(3)
	c.Open(-1)
	if c.IsOpen() {
		t.Error("out-of-range Open made the overlay visible")
	}
}

func TestWraparound(t *testing.T) {
	c := New(threeEntries(), 1280, 600)

	c.Open(0)
	c.ShowPrevious()
	if c.Index() != 2 {
		t.Errorf("open(0) then previous = %d, want 2", c.Index())
	}

	c.Open(2)
	c.ShowNext()
	if c.Index() != 0 {
		t.Errorf("open(2) then next = %d, want 0", c.Index())
	}
}

func TestNavigationStaysInRange(t *testing.T) {
	entries := threeEntries()
	moves := []bool{true, true, false, true, false, false, false, false, true, true, true, true, false}

	for start := range entries {
		c := New(entries, 1280, 600)
		c.Open(start)
		for step, next := range moves {
			if next {
				c.ShowNext()
			} else {
				c.ShowPrevious()
			}
			if c.Index() < 0 || c.Index() >= len(entries) {
				t.Fatalf("start %d step %d: index %d out of range", start, step, c.Index())
			}
			if c.Slot().Src != entries[c.Index()].Src {
				t.Fatalf("start %d step %d: slot %q does not match index %d", start, step, c.Slot().Src, c.Index())
			}
		}
	}
}

func TestOpenThenCloseClearsSlot(t *testing.T) {
	c := New(threeEntries(), 1280, 600)
	c.Open(1)
	c.Close()

	if c.IsOpen() {
		t.Error("overlay still open after Close")
	}
	if c.Slot().Src != "" || c.Slot().Alt != "" {
		t.Errorf("slot = %+v after Close, want empty", c.Slot())
	}
}

func TestClick(t *testing.T) {
	tests := []struct {
		name        string
		open        bool
		target      Target
		wantHandled bool
		wantOpen    bool
		wantIndex   int
	}{
		{"entry opens its index", false, Target{Kind: TargetEntry, Index: 2}, true, true, 2},
		{"entry out of range", false, Target{Kind: TargetEntry, Index: 9}, false, false, 0},
		{"backdrop closes", true, Target{Kind: TargetBackdrop}, true, false, 1},
		{"backdrop while closed", false, Target{Kind: TargetBackdrop}, false, false, 0},
		{"image does not close", true, Target{Kind: TargetImage}, true, true, 1},
		{"previous control", true, Target{Kind: TargetPrevious}, true, true, 0},
		{"next control", true, Target{Kind: TargetNext}, true, true, 2},
		{"close control", true, Target{Kind: TargetClose}, true, false, 1},
		{"nothing", true, Target{Kind: TargetNone}, false, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(threeEntries(), 1280, 600)
			if tt.open {
				c.Open(1)
			}

			handled := c.Click(tt.target)

			if handled != tt.wantHandled {
				t.Errorf("handled = %v, want %v", handled, tt.wantHandled)
			}
			if c.IsOpen() != tt.wantOpen {
				t.Errorf("open = %v, want %v", c.IsOpen(), tt.wantOpen)
			}
			if c.Index() != tt.wantIndex {
				t.Errorf("index = %d, want %d", c.Index(), tt.wantIndex)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	c := New(threeEntries(), 1280, 600)

	// Closed: keys are ignored.
	if c.Key(KeyRight) || c.IsOpen() || c.Index() != 0 {
		t.Fatal("key handled while closed")
	}

	c.Open(0)
	if !c.Key(KeyLeft) || c.Index() != 2 {
		t.Errorf("left from 0 = %d, want 2", c.Index())
	}
	if !c.Key(KeyRight) || c.Index() != 0 {
		t.Errorf("right from 2 = %d, want 0", c.Index())
	}
	if c.Key(KeyNone) {
		t.Error("unknown key consumed")
	}
	if !c.Key(KeyEscape) || c.IsOpen() {
		t.Error("escape did not close")
	}
	if c.Slot() != (Slot{}) {
		t.Errorf("slot = %+v after escape, want empty", c.Slot())
	}
}
