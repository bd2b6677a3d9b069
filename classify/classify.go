package classify

import (
	"strings"

	"github.com/npillmayer/mdstream/scan"
)

// Result is the complete output of the classification pass.
type Result struct {
	Doc    string
	Lines  []LineRecord
	Paras  []Paragraph
	Refs   *RefTable
	paraOf []int // line index → paragraph index, -1 for ignored lines
}

// Text returns the raw text of line i, without its EOL.
func (r *Result) Text(i int) string {
	ln := r.Lines[i]
	return r.Doc[ln.Start:ln.End]
}

// ParaBounds returns the first and last line index of the paragraph
// containing line i.
func (r *Result) ParaBounds(i int) (first, last int, ok bool) {
	if i < 0 || i >= len(r.paraOf) || r.paraOf[i] < 0 {
		return 0, 0, false
	}
	p := r.Paras[r.paraOf[i]]
	return p.First, p.Last, true
}

// Classify performs the single forward pass over the document, producing
// line records, paragraph ranges and the reference table. Line tests run
// in fixed priority; the first match wins and is never re-evaluated.
func Classify(doc string) *Result {
	r := &Result{Doc: doc, Refs: NewRefTable()}
	splitLines(r, doc)
	r.paraOf = make([]int, len(r.Lines))
	for i := range r.paraOf {
		r.paraOf[i] = -1
	}

	open := -1 // first line of the open paragraph, -1 when closed
	emit := func(first, last int) {
		r.Paras = append(r.Paras, Paragraph{First: first, Last: last})
		for j := first; j <= last; j++ {
			r.paraOf[j] = len(r.Paras) - 1
		}
	}
	closePara := func(last int) {
		if open >= 0 && last >= open {
			emit(open, last)
		}
		open = -1
	}

	for i := range r.Lines {
		ln := &r.Lines[i]
		text := doc[ln.Start:ln.End]
		trimmed := strings.TrimSpace(text)
		ln.Indent = indentOf(text)
		var prev *LineRecord
		if i > 0 {
			prev = &r.Lines[i-1]
		}

		if trimmed == "" {
			// blank lines are always ignored and separate paragraphs
			ln.Ignored = true
			closePara(i - 1)
			continue
		}

		switch {
		case prev != nil && (prev.Cat == FencedStart || prev.Cat == FencedCode):
			// inside an open fence nothing is reclassified
			if strings.HasPrefix(text, "```") {
				ln.Cat = FencedEnd
			} else {
				ln.Cat = FencedCode
			}
			if open < 0 {
				open = i
			}

		case prev != nil && !prev.Ignored && prev.Cat == None && isSetextUnderline(trimmed):
			if trimmed[0] == '=' {
				prev.Cat = H1
			} else {
				prev.Cat = H2
			}
			ln.Ignored = true
			// the re-labeled heading becomes its own paragraph
			closePara(i - 2)
			emit(i-1, i-1)

		case isHR(text):
			ln.Cat = HR
			closePara(i - 1)
			emit(i, i)

		case isRefDef(r, text):
			ln.Ignored = true
			closePara(i - 1)

		case isIndentedCode(text, i, prev):
			ln.Cat = Pre
			if open < 0 {
				open = i
			}

		case strings.HasPrefix(text, "```"):
			ln.Cat = FencedStart
			if open < 0 {
				open = i
			}

		case strings.HasPrefix(text, "#"):
			ln.Cat = Heading
			closePara(i - 1)
			emit(i, i)

		default:
			cat := listCategory(trimmed, ln.Indent, prev)
			ln.Cat = cat
			if cat == List {
				closePara(i - 1)
				open = i
			} else if open < 0 {
				open = i
			}
		}
		tracer().Debugf("line %3d: %-12v indent=%d %q", i, ln.Cat, ln.Indent, trimmed)
	}
	closePara(len(r.Lines) - 1)
	tracer().Infof("classified %d lines, %d paragraphs, %d reference(s)",
		len(r.Lines), len(r.Paras), r.Refs.Len())
	return r
}

// splitLines covers doc contiguously with line records, splitting on bare
// `\n` and on `\r\n`.
func splitLines(r *Result, doc string) {
	pos := 0
	for pos < len(doc) {
		rec := LineRecord{Start: pos}
		if nl := strings.IndexByte(doc[pos:], '\n'); nl >= 0 {
			rec.End = pos + nl
			rec.EOL = true
			pos += nl + 1
		} else {
			rec.End = len(doc)
			pos = len(doc)
		}
		if rec.End > rec.Start && doc[rec.End-1] == '\r' {
			rec.End--
		}
		r.Lines = append(r.Lines, rec)
	}
}

// indentOf counts leading whitespace in space units, a tab counting as 4.
func indentOf(text string) int {
	indent := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			indent++
		case '\t':
			indent += 4
		default:
			return indent
		}
	}
	return indent
}

// isSetextUnderline reports whether a trimmed, non-empty line consists
// entirely of `=` or entirely of `-`.
func isSetextUnderline(trimmed string) bool {
	ch := trimmed[0]
	if ch != '=' && ch != '-' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

// isHR reports whether the line reduces to empty after stripping blanks and
// the rule characters, with no run of 3+ blanks anywhere.
func isHR(text string) bool {
	return strings.Trim(text, " -*_") == "" && !strings.Contains(text, "   ")
}

func isRefDef(r *Result, text string) bool {
	label, href, title, ok := scan.RefDef(text)
	if !ok {
		return false
	}
	// last definition wins
	r.Refs.Add(label, href, title)
	return true
}

func isIndentedCode(text string, i int, prev *LineRecord) bool {
	if !strings.HasPrefix(text, "\t") && !strings.HasPrefix(text, "    ") {
		return false
	}
	return i == 0 || prev.Cat == Pre || prev.Ignored
}

// listCategory applies the list-item grammar: a marker line indented less
// than 4 spaces starts (or continues) a list; otherwise a line following a
// list line at a similar or deeper indent is a continuation.
func listCategory(trimmed string, indent int, prev *LineRecord) Category {
	if _, _, ok := scan.ListMarker(trimmed); ok && indent < 4 {
		return List
	}
	if prev != nil && (prev.Cat == List || prev.Cat == SubList) {
		delta := indent - prev.Indent
		if (delta >= -4 && delta <= 0) || (delta >= 4 && delta <= 8) {
			return SubList
		}
	}
	return None
}
