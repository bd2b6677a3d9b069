package inline

import (
	"strings"

	"github.com/npillmayer/mdstream/autolink"
	"github.com/npillmayer/mdstream/sax"
)

// markers is the set of characters that may begin inline syntax.
const markers = "*_~[!`<"

// RefLookup resolves reference-link labels, case-insensitively.
// classify.RefTable satisfies it.
type RefLookup interface {
	Lookup(label string) (href, title string, ok bool)
}

// Parser parses the inline markup of single lines of block content.
// It is stateless between lines except for the bound emitter.
type Parser struct {
	em       *sax.Emitter
	refs     RefLookup
	detect   autolink.Detector
	maxDepth int
}

// New creates an inline parser emitting to em. refs may be nil (no
// reference links resolve), detect may be nil (no autodetection).
func New(em *sax.Emitter, refs RefLookup, detect autolink.Detector, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = 16
	}
	return &Parser{em: em, refs: refs, detect: detect, maxDepth: maxDepth}
}

// ParseLine parses one line of text, with block-prefix syntax already
// stripped by the caller, and emits character and element events.
func (p *Parser) ParseLine(text string, autodetect bool) {
	p.parse(text, autodetect, 0)
}

func (p *Parser) parse(s string, auto bool, depth int) {
	i := 0
	for i < len(s) {
		j := strings.IndexAny(s[i:], markers)
		if j < 0 {
			p.text(s[i:], auto)
			return
		}
		if j > 0 {
			p.text(s[i:i+j], auto)
			i += j
		}
		if n := p.tryMarker(s[i:], auto, depth); n > 0 {
			i += n
		} else {
			// a marker matching no syntax is a single literal character
			p.em.Text(s[i : i+1])
			i++
		}
	}
}

// tryMarker attempts to recognize inline syntax at the start of s and
// returns the number of bytes consumed, 0 for no match.
func (p *Parser) tryMarker(s string, auto bool, depth int) int {
	switch s[0] {
	case '!':
		return p.tryImage(s)
	case '[':
		return p.tryLink(s, auto, depth)
	case '*', '_', '~', '`':
		return p.tryEmphasis(s, auto, depth)
	case '<':
		return p.tryAngleLink(s)
	}
	return 0
}

// emphasisTags maps marker strings to element names. Two-character
// markers are matched before their one-character prefixes.
var emphasisTags = []struct {
	marker string
	tag    string
}{
	{"**", "strong"},
	{"__", "strong"},
	{"~~", "del"},
	{"*", "em"},
	{"_", "em"},
	{"`", "code"},
}

func (p *Parser) tryEmphasis(s string, auto bool, depth int) int {
	for _, e := range emphasisTags {
		if !strings.HasPrefix(s, e.marker) {
			continue
		}
		end := strings.Index(s[len(e.marker):], e.marker)
		if end < 0 {
			// no closing marker: the opening marker is literal text and
			// scanning resumes right behind it
			p.em.Text(e.marker)
			return len(e.marker)
		}
		inner := s[len(e.marker) : len(e.marker)+end]
		p.em.Push(e.tag)
		if e.tag == "code" || depth >= p.maxDepth {
			// code spans are never scanned further; past the recursion
			// bound enclosed text degrades to literal as well
			p.em.Text(inner)
		} else {
			p.parse(inner, auto, depth+1)
		}
		p.em.Pop()
		return 2*len(e.marker) + len(inner)
	}
	return 0
}

// tryAngleLink recognizes `<scheme://…>` and emits an anchor. Anything
// else starting with `<` stays literal.
func (p *Parser) tryAngleLink(s string) int {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return 0
	}
	inner := s[1:end]
	if inner == "" || strings.ContainsAny(inner, " \t") || !strings.Contains(inner, "://") {
		return 0
	}
	p.em.Push("a", sax.Attr{Key: sax.AttrHref, Value: inner})
	p.em.Text(inner)
	p.em.Pop()
	return end + 1
}

// text emits a run of non-marker characters, routing it through the
// autolink detector when autodetection is enabled. Detection re-arms after
// every literal segment; a failed match never suppresses later spans.
func (p *Parser) text(run string, auto bool) {
	if !auto || p.detect == nil {
		p.em.Text(run)
		return
	}
	cur := 0
	for _, sp := range p.detect.Detect(run) {
		if sp.Start > cur {
			p.em.Text(run[cur:sp.Start])
		}
		p.em.Push("a", sax.Attr{Key: sax.AttrHref, Value: sp.URL})
		p.em.Text(run[sp.Start:sp.End])
		p.em.Pop()
		cur = sp.End
	}
	if cur < len(run) {
		p.em.Text(run[cur:])
	}
}
