package mdstream

import (
	"github.com/npillmayer/mdstream/autolink"
	"github.com/npillmayer/mdstream/classify"
	"github.com/npillmayer/mdstream/core"
	"github.com/npillmayer/mdstream/inline"
	"github.com/npillmayer/mdstream/sax"
	"github.com/npillmayer/mdstream/walk"
)

// DefaultMaxNesting bounds the recursion depth of nested inline markup.
const DefaultMaxNesting = 16

// Options configures a parse. The zero value is usable.
type Options struct {
	// HardNewlines makes every newline within a paragraph a hard line
	// break (`br`). Off, a line must end in two spaces or a backslash to
	// force one; otherwise lines join softly.
	HardNewlines bool
	// AutoDetectLinks routes plain, list and blockquote content through
	// link autodetection.
	AutoDetectLinks bool
	// Detector overrides the built-in autodetector. Ignored unless
	// AutoDetectLinks is set.
	Detector autolink.Detector
	// MaxNesting bounds inline recursion depth; 0 means DefaultMaxNesting.
	MaxNesting int
}

// Parser parses exactly one document over its lifetime and must not be
// driven concurrently.
type Parser struct {
	opts Options
	em   *sax.Emitter
	used bool
}

// NewParser binds a sink and returns a single-use parser. The sink's
// capabilities are determined here, once, not per event.
func NewParser(sink interface{}, opts Options) *Parser {
	return &Parser{opts: opts, em: sax.NewEmitter(sink)}
}

// Parse runs the full parse over input, emitting events to the bound
// sink. Empty input is the single fatal input condition: it fails with
// zero events emitted. All malformed markup instead degrades to literal
// text at the narrowest possible scope.
func (p *Parser) Parse(input string) error {
	if p.used {
		return core.Error(core.EINTERNAL, "parser instances are single-use")
	}
	p.used = true
	if input == "" {
		return core.Error(core.EINVALID, "empty input")
	}

	res := classify.Classify(input)

	det := p.opts.Detector
	if det == nil && p.opts.AutoDetectLinks {
		det = autolink.Default()
	}
	inl := inline.New(p.em, res.Refs, det, p.opts.MaxNesting)
	w := walk.New(res, p.em, inl, walk.Config{
		HardNewlines: p.opts.HardNewlines,
		AutoDetect:   p.opts.AutoDetectLinks,
	})

	p.em.StartDocument()
	err := w.Walk()
	p.em.EndDocument()
	if err == nil {
		err = p.em.Err()
	}
	if err != nil {
		tracer().Errorf("parse aborted: %v", err)
		return core.WrapError(err, core.EABORT, "sink aborted the parse")
	}
	return nil
}

// Parse is the one-shot convenience form of Parser.Parse.
func Parse(input string, sink interface{}, opts Options) error {
	return NewParser(sink, opts).Parse(input)
}
