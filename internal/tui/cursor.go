package tui

// cursor is the navigation state machine over a fixed sequence of n
// table names: either nothing is selected, or a valid index in [0, n).
// The zero value is the unselected state.
type cursor struct {
	index    int
	selected bool
}

// current returns the selected index, if any.
func (c cursor) current() (int, bool) {
	if !c.selected {
		return 0, false
	}
	return c.index, true
}

// advance moves the selection down one entry, wrapping from the last
// table to the first. With n == 0 it is a no-op; with no prior selection
// it lands on the first table.
func (c *cursor) advance(n int) {
	if n == 0 {
		return
	}
	if c.selected {
		c.index = (c.index + 1) % n
	} else {
		c.index = 0
		c.selected = true
	}
}

// retreat moves the selection up one entry, wrapping from the first
// table to the last. With n == 0 it is a no-op; with no prior selection
// it lands on the first table.
func (c *cursor) retreat(n int) {
	if n == 0 {
		return
	}
	if c.selected {
		c.index = (c.index - 1 + n) % n
	} else {
		c.index = 0
		c.selected = true
	}
}
