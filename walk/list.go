package walk

import (
	"strings"

	"github.com/npillmayer/mdstream/classify"
	"github.com/npillmayer/mdstream/scan"
)

// listEngine manages nested list open/close. Nesting level derives from
// the indentation quarter (indent/4) of marker lines, compared against the
// previous marker line's quarter.
type listEngine struct {
	w          *Walker
	depth      int // number of open ul/ol levels
	prevQ      int // quarter of the previous marker line
	itemIndent int // indent of the currently open item
}

// feed processes one List or SubList line.
func (le *listEngine) feed(i int) {
	w := le.w
	ln := w.res.Lines[i]
	trimmed := strings.TrimLeft(w.res.Text(i), " \t")
	marker, rest, hasMarker := scan.ListMarker(trimmed)
	q := ln.Indent / 4

	if !hasMarker {
		le.continuation(i, trimmed)
		return
	}

	switch {
	case ln.Cat == classify.List && le.depth == 0:
		le.openLevel(marker)
	case ln.Cat == classify.SubList && q > le.prevQ:
		le.openLevel(marker)
	case q < le.prevQ:
		le.closeLevels(q + 1)
	}

	le.closeItem()
	w.em.Push("li")
	le.itemIndent = ln.Indent
	le.prevQ = q

	hanging := le.hangingAhead(i)
	if hanging {
		// loose item: wrap its text in a paragraph and leave li/p open
		// for the continuation lines
		w.em.Push("p")
	}
	// a directly adjacent None continuation joins the item text; SubList
	// continuations emit their own leading separator
	joins := hanging && i+1 < len(w.res.Lines) && !w.res.Lines[i+1].Ignored &&
		w.res.Lines[i+1].Cat == classify.None
	w.emitJoined(strings.TrimLeft(rest, " \t"), joins)
	if !hanging {
		le.settle(i)
	}
}

// continuation handles a marker-less list line: hanging-paragraph content
// or a lazy continuation of the open item's text.
func (le *listEngine) continuation(i int, trimmed string) {
	w := le.w
	em := w.em
	prevIgnored := i > 0 && w.res.Lines[i-1].Ignored
	switch em.Top() {
	case "p":
		if prevIgnored {
			em.Pop()
			em.Push("p") // a gap starts a new paragraph within the item
		} else {
			w.breakJoin(w.cfg.HardNewlines)
		}
	case "li":
		if prevIgnored || w.res.Lines[i].Indent > le.itemIndent {
			em.Push("p")
		} else {
			// lazy continuation joins the item text
			w.breakJoin(w.cfg.HardNewlines)
		}
	}
	w.inl.ParseLine(strings.TrimSpace(trimmed), w.cfg.AutoDetect)

	// close the paragraph when the continuation run ends
	j := i + 1
	endsPara := j >= len(w.res.Lines) || w.res.Lines[j].Ignored ||
		w.res.Lines[j].Cat != classify.SubList || le.markerAt(j)
	if endsPara && em.Top() == "p" {
		em.Pop()
	}
	le.settle(i)
}

// settle closes the open item, and the whole list, when the next relevant
// line no longer belongs to the list.
func (le *listEngine) settle(i int) {
	lines := le.w.res.Lines
	k := i + 1
	for k < len(lines) && lines[k].Ignored {
		k++
	}
	if k >= len(lines) {
		return // the final drain closes everything
	}
	next := lines[k]
	if next.Cat == classify.List || next.Cat == classify.SubList {
		return // the arriving line closes the item itself
	}
	if next.Cat == classify.None && next.Indent > le.itemIndent {
		return // hanging continuation, li stays open
	}
	le.closeAll()
}

// closeItem closes an open li (and its paragraph) when one sits on top of
// the stack. Siblings never nest.
func (le *listEngine) closeItem() {
	em := le.w.em
	for {
		switch em.Top() {
		case "p":
			em.Pop()
		case "li":
			em.Pop()
			return
		default:
			return
		}
	}
}

func (le *listEngine) openLevel(marker string) {
	kind := "ul"
	if scan.Ordered(marker) {
		kind = "ol"
	}
	tracer().Debugf("open list level %d (%s)", le.depth+1, kind)
	le.w.em.Push(kind)
	le.depth++
}

// closeLevels pops tags until only target list levels remain open,
// counting each popped ul/ol and popping through intervening li/p tags.
func (le *listEngine) closeLevels(target int) {
	em := le.w.em
	for le.depth > target {
		if t := em.Pop(); t == "ul" || t == "ol" {
			le.depth--
		}
	}
}

// closeAll ends the list entirely.
func (le *listEngine) closeAll() {
	le.closeItem()
	le.closeLevels(0)
	le.prevQ = 0
	le.itemIndent = 0
}

// hangingAhead reports whether the line at i is followed, across any run
// of ignored lines, by an indented marker-less continuation.
func (le *listEngine) hangingAhead(i int) bool {
	w := le.w
	lines := w.res.Lines
	itemIndent := lines[i].Indent
	k := i + 1
	for k < len(lines) && lines[k].Ignored {
		k++
	}
	if k >= len(lines) || lines[k].Indent <= itemIndent {
		return false
	}
	switch lines[k].Cat {
	case classify.SubList:
		return !le.markerAt(k)
	case classify.None:
		return true
	}
	return false
}

func (le *listEngine) markerAt(k int) bool {
	trimmed := strings.TrimLeft(le.w.res.Text(k), " \t")
	_, _, ok := scan.ListMarker(trimmed)
	return ok
}
