package sax

import (
	"fmt"
	"strings"
)

// Recorder is a sink that records the event stream in a compact textual
// form: `<p>` and `</p>` for element boundaries, quoted strings for
// character runs. It implements every handler interface and is primarily
// useful for tests and for debugging client integrations.
type Recorder struct {
	Events []string
}

func (r *Recorder) StartDocument() error {
	r.Events = append(r.Events, "<doc>")
	return nil
}

func (r *Recorder) EndDocument() error {
	r.Events = append(r.Events, "</doc>")
	return nil
}

func (r *Recorder) StartElement(name string, attrs Attributes) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, att := range attrs {
		fmt.Fprintf(&b, " %s=%q", att.Key, att.Value)
	}
	b.WriteByte('>')
	r.Events = append(r.Events, b.String())
	return nil
}

func (r *Recorder) EndElement(name string) error {
	r.Events = append(r.Events, "</"+name+">")
	return nil
}

func (r *Recorder) Characters(text string) error {
	r.Events = append(r.Events, fmt.Sprintf("%q", text))
	return nil
}

var _ DocumentHandler = (*Recorder)(nil)
var _ ElementHandler = (*Recorder)(nil)
var _ TextHandler = (*Recorder)(nil)
