package sax

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Emitter dispatches events to a bound sink and maintains the stack of
// currently open element tags. All emitting methods are no-ops for the sink
// once a callback has returned an error, but the tag stack keeps tracking
// opens and closes so that callers may unwind deterministically.
type Emitter struct {
	cb   callbacks
	tags *arraystack.Stack
	err  error
}

// NewEmitter binds a sink and returns an emitter with an empty tag stack.
// The sink's capabilities are determined here, once.
func NewEmitter(sink interface{}) *Emitter {
	return &Emitter{
		cb:   bind(sink),
		tags: arraystack.New(),
	}
}

// Err returns the first error a sink callback returned, if any.
func (e *Emitter) Err() error {
	return e.err
}

func (e *Emitter) fail(err error) {
	if err != nil && e.err == nil {
		tracer().Errorf("sink aborted event stream: %v", err)
		e.err = err
	}
}

// StartDocument emits the document-start event.
func (e *Emitter) StartDocument() {
	if e.err != nil || e.cb.startDoc == nil {
		return
	}
	e.fail(e.cb.startDoc())
}

// EndDocument emits the document-end event.
func (e *Emitter) EndDocument() {
	if e.err != nil || e.cb.endDoc == nil {
		return
	}
	e.fail(e.cb.endDoc())
}

// Push opens an element: the tag goes onto the stack and a start-element
// event is emitted.
func (e *Emitter) Push(name string, attrs ...Attr) {
	e.tags.Push(name)
	if e.err != nil || e.cb.startElem == nil {
		return
	}
	e.fail(e.cb.startElem(name, Attributes(attrs)))
}

// Pop closes the innermost open element, emitting the end-element event,
// and returns its tag. Popping an empty stack is a defect and panics.
func (e *Emitter) Pop() string {
	v, ok := e.tags.Pop()
	if !ok {
		panic("mdstream/sax: tag stack underflow")
	}
	name := v.(string)
	if e.err == nil && e.cb.endElem != nil {
		e.fail(e.cb.endElem(name))
	}
	return name
}

// PopThrough pops open elements up to and including the given tag.
// It is a defect to call it when the tag is not on the stack.
func (e *Emitter) PopThrough(name string) {
	for e.Pop() != name {
	}
}

// Text emits a character-run event. Empty runs are dropped.
func (e *Emitter) Text(s string) {
	if s == "" || e.err != nil || e.cb.chars == nil {
		return
	}
	e.fail(e.cb.chars(s))
}

// Top returns the innermost open tag, or "" if no element is open.
func (e *Emitter) Top() string {
	v, ok := e.tags.Peek()
	if !ok {
		return ""
	}
	return v.(string)
}

// Contains reports whether a tag is open anywhere on the stack.
func (e *Emitter) Contains(name string) bool {
	for _, v := range e.tags.Values() {
		if v.(string) == name {
			return true
		}
	}
	return false
}

// Depth returns the number of open elements.
func (e *Emitter) Depth() int {
	return e.tags.Size()
}

// Drain pops every remaining open element, guaranteeing a balanced stream
// even for truncated or malformed input.
func (e *Emitter) Drain() {
	if e.Depth() > 0 {
		tracer().Debugf("draining %d unclosed tag(s)", e.Depth())
	}
	for e.Depth() > 0 {
		e.Pop()
	}
}
