package walk

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mdstream/classify"
	"github.com/npillmayer/mdstream/inline"
	"github.com/npillmayer/mdstream/sax"
	"github.com/npillmayer/mdstream/scan"
)

// Config carries the walker-relevant options.
type Config struct {
	HardNewlines bool // a single newline within a paragraph is a hard break
	AutoDetect   bool // route plain/list/blockquote content through autodetection
}

// Walker drives the event emission for one classified document.
type Walker struct {
	res  *classify.Result
	em   *sax.Emitter
	inl  *inline.Parser
	cfg  Config
	list *listEngine
}

// New creates a walker over a classification result.
func New(res *classify.Result, em *sax.Emitter, inl *inline.Parser, cfg Config) *Walker {
	w := &Walker{res: res, em: em, inl: inl, cfg: cfg}
	w.list = &listEngine{w: w}
	return w
}

// Walk emits the event stream for the whole document (document boundary
// events are the caller's business). It returns the first sink error; the
// walk stops as soon as one occurs.
func (w *Walker) Walk() error {
	lines := w.res.Lines
	for i := range lines {
		if err := w.em.Err(); err != nil {
			return err
		}
		ln := lines[i]
		if ln.Ignored {
			continue
		}
		text := w.res.Text(i)
		// a non-quote line terminates an open blockquote
		if w.em.Contains("blockquote") && !strings.HasPrefix(text, ">") {
			w.em.PopThrough("blockquote")
		}
		// structural lines other than list lines end an open list
		if w.list.depth > 0 && ln.Cat != classify.List &&
			ln.Cat != classify.SubList && ln.Cat != classify.None {
			w.list.closeAll()
		}
		tracer().Debugf("walk line %3d: %v", i, ln.Cat)
		switch ln.Cat {
		case classify.HR:
			w.em.Push("hr")
			w.em.Pop()
		case classify.List, classify.SubList:
			w.list.feed(i)
		case classify.FencedStart, classify.FencedEnd:
			// fence marker lines never appear in the event stream
		case classify.Pre, classify.FencedCode:
			w.codeLine(i)
		case classify.H1, classify.H2, classify.Heading:
			w.headingLine(i)
		default:
			w.plainLine(i)
		}
	}
	w.em.Drain()
	return w.em.Err()
}

// codeLine emits the content of one indented or fenced code line, opening
// pre>code once per run and closing it when the run ends.
func (w *Walker) codeLine(i int) {
	ln := w.res.Lines[i]
	text := w.res.Text(i)
	if ln.Cat == classify.Pre {
		// strip one level of indentation; fenced content passes verbatim
		if strings.HasPrefix(text, "\t") {
			text = text[1:]
		} else if strings.HasPrefix(text, "    ") {
			text = text[4:]
		}
	}
	if w.em.Top() != "code" {
		w.em.Push("pre")
		w.em.Push("code")
	}
	if ln.EOL {
		text += "\n"
	}
	w.em.Text(text)
	if w.codeRunEnds(i) {
		w.em.Pop() // code
		w.em.Pop() // pre
	}
}

func (w *Walker) codeRunEnds(i int) bool {
	_, last, ok := w.res.ParaBounds(i)
	if !ok || i == last {
		return true
	}
	next := w.res.Lines[i+1].Cat
	// FencedEnd terminates the run; so does any non-code category
	return next != classify.Pre && next != classify.FencedCode
}

// headingLine emits a heading element. ATX syntax is stripped; setext
// headings use the line text as is.
func (w *Walker) headingLine(i int) {
	ln := w.res.Lines[i]
	text := w.res.Text(i)
	var level int
	var content string
	switch ln.Cat {
	case classify.H1:
		level, content = 1, strings.TrimSpace(text)
	case classify.H2:
		level, content = 2, strings.TrimSpace(text)
	default:
		level, content = scan.ATXHeading(text)
	}
	w.em.Push("h" + strconv.Itoa(level))
	w.inl.ParseLine(content, false)
	w.em.Pop()
}

// plainLine handles category-None lines: paragraph content, possibly
// inside a blockquote or hanging under a list item.
func (w *Walker) plainLine(i int) {
	ln := w.res.Lines[i]
	text := w.res.Text(i)
	first, last, _ := w.res.ParaBounds(i)

	fresh := false
	if strings.HasPrefix(text, ">") {
		if !w.em.Contains("blockquote") {
			if w.em.Contains("p") {
				// keep block-context switches properly nested
				w.em.PopThrough("p")
			}
			w.em.Push("blockquote")
			fresh = true
		}
		text = strings.TrimPrefix(text[1:], " ")
	} else if ln.Indent == 0 && w.list.depth > 0 {
		// a flush-left plain line cannot continue a list
		w.list.closeAll()
	}

	// a paragraph opens on a paragraph's first line, after a fresh context
	// switch, and whenever no p is open for this content (the range may
	// have started with code lines)
	if fresh || i == first || !w.em.Contains("p") {
		if w.em.Contains("p") {
			w.em.PopThrough("p")
		}
		w.em.Push("p")
	}

	joins := i != last && !w.nextCloses(i)
	w.emitJoined(strings.TrimLeft(text, " \t"), joins)
	if !joins && w.em.Top() == "p" {
		w.em.Pop()
	}
}

// emitJoined parses one line's inline content and, when the line joins a
// following one within the same block tag, appends the join separator.
// Hard-break syntax (trailing double blank or backslash) is stripped from
// the content.
func (w *Walker) emitJoined(content string, joins bool) {
	hard := false
	if joins {
		hard = w.cfg.HardNewlines ||
			strings.HasSuffix(content, "  ") || strings.HasSuffix(content, `\`)
		content = strings.TrimSuffix(strings.TrimRight(content, " "), `\`)
	}
	w.inl.ParseLine(content, w.cfg.AutoDetect)
	if joins {
		w.breakJoin(hard)
	}
}

// breakJoin emits the separator between two joined lines of one block: a
// br element for a hard break, a newline character otherwise.
func (w *Walker) breakJoin(hard bool) {
	if hard {
		w.em.Push("br")
		w.em.Pop()
	} else {
		w.em.Text("\n")
	}
}

// nextCloses reports whether the following line forces the current block
// tag to close: end of input, an ignored line, or any structural line.
func (w *Walker) nextCloses(i int) bool {
	if i+1 >= len(w.res.Lines) {
		return true
	}
	next := w.res.Lines[i+1]
	return next.Ignored || next.Cat != classify.None
}
