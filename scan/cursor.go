package scan

import "strings"

// Cursor is a resumable left-to-right scanner over a single line of text.
type Cursor struct {
	text string
	pos  int
}

// NewCursor creates a cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{text: s}
}

// EOF reports whether the cursor is exhausted.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.text)
}

// Pos returns the current byte position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Peek returns the byte at the cursor without consuming it, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.text[c.pos]
}

// Match consumes the given prefix if it is next, reporting success.
func (c *Cursor) Match(prefix string) bool {
	if strings.HasPrefix(c.text[c.pos:], prefix) {
		c.pos += len(prefix)
		return true
	}
	return false
}

// SkipSpaces consumes a run of blanks and tabs, returning its length.
func (c *Cursor) SkipSpaces() int {
	n := 0
	for !c.EOF() && (c.text[c.pos] == ' ' || c.text[c.pos] == '\t') {
		c.pos++
		n++
	}
	return n
}

// While consumes bytes as long as pred holds, returning the consumed run.
func (c *Cursor) While(pred func(byte) bool) string {
	start := c.pos
	for !c.EOF() && pred(c.text[c.pos]) {
		c.pos++
	}
	return c.text[start:c.pos]
}

// Until consumes up to and including the stop byte and returns the text
// before it. If the stop byte does not occur, the cursor is left untouched
// and ok is false.
func (c *Cursor) Until(stop byte) (string, bool) {
	i := strings.IndexByte(c.text[c.pos:], stop)
	if i < 0 {
		return "", false
	}
	s := c.text[c.pos : c.pos+i]
	c.pos += i + 1
	return s, true
}

// Rest returns the unconsumed remainder of the line.
func (c *Cursor) Rest() string {
	return c.text[c.pos:]
}
