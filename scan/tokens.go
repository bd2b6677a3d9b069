package scan

import "strings"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// RefDef recognizes a reference-definition line of the form
//
//	[label]: url "optional title"
//
// The title may be delimited by double or single quotes.
func RefDef(line string) (label, href, title string, ok bool) {
	c := NewCursor(line)
	c.SkipSpaces()
	if !c.Match("[") {
		return
	}
	label, found := c.Until(']')
	if !found || label == "" {
		return "", "", "", false
	}
	if !c.Match(":") {
		return "", "", "", false
	}
	c.SkipSpaces()
	href = c.While(func(b byte) bool { return b != ' ' && b != '\t' })
	if href == "" {
		return "", "", "", false
	}
	c.SkipSpaces()
	for _, q := range []string{`"`, `'`} {
		if c.Match(q) {
			if t, closed := c.Until(q[0]); closed {
				title = t
			}
			break
		}
	}
	return label, href, title, true
}

// ListMarker recognizes a list-item prefix at the start of s (expected to
// be indent-stripped): a bullet `-`, `+` or `*`, or a digit run followed by
// `.` or `)`, in both cases followed by at least one blank. It returns the
// marker token and the item text after the separating blank.
func ListMarker(s string) (marker, rest string, ok bool) {
	if s == "" {
		return
	}
	switch s[0] {
	case '-', '+', '*':
		if len(s) > 1 && s[1] == ' ' {
			return s[:1], s[2:], true
		}
		return
	}
	c := NewCursor(s)
	digits := c.While(isDigit)
	if digits == "" {
		return
	}
	if c.Peek() != '.' && c.Peek() != ')' {
		return
	}
	punct := string(c.Peek())
	c.pos++
	if !c.Match(" ") {
		return
	}
	return digits + punct, c.Rest(), true
}

// Ordered reports whether a list marker selects an ordered list.
// A trailing `.` selects `ol`, anything else `ul`.
func Ordered(marker string) bool {
	return strings.HasSuffix(marker, ".")
}

// ATXHeading strips ATX heading syntax: the leading `#` run determines the
// level; afterwards one layer of surrounding blanks and a trailing `#` run
// are removed.
func ATXHeading(line string) (level int, text string) {
	c := NewCursor(line)
	hashes := c.While(func(b byte) bool { return b == '#' })
	level = len(hashes)
	text = strings.TrimSpace(c.Rest())
	text = strings.TrimRight(text, "#")
	text = strings.TrimRight(text, " ")
	return level, text
}

// Bracketed recognizes a `[…]` span at the start of s, scanning to the next
// closing bracket (bracket pairs do not nest). It returns the inner text
// and the number of bytes consumed including both brackets.
func Bracketed(s string) (inner string, n int, ok bool) {
	if s == "" || s[0] != '[' {
		return
	}
	c := NewCursor(s[1:])
	inner, found := c.Until(']')
	if !found {
		return "", 0, false
	}
	return inner, c.Pos() + 1, true
}

// LinkTarget recognizes an inline link target `(url "optional title")` at
// the start of s. It returns the target, the title (or ""), and the number
// of bytes consumed including both parentheses.
func LinkTarget(s string) (href, title string, n int, ok bool) {
	c := NewCursor(s)
	if !c.Match("(") {
		return
	}
	c.SkipSpaces()
	href = c.While(func(b byte) bool { return b != ' ' && b != '\t' && b != ')' })
	if href == "" {
		return "", "", 0, false
	}
	c.SkipSpaces()
	for _, q := range []string{`"`, `'`} {
		if c.Match(q) {
			t, closed := c.Until(q[0])
			if !closed {
				return "", "", 0, false
			}
			title = t
			c.SkipSpaces()
			break
		}
	}
	if !c.Match(")") {
		return "", "", 0, false
	}
	return href, title, c.Pos(), true
}
