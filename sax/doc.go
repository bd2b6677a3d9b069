/*
Package sax defines the event protocol between the Markdown walker and a
client-provided sink.

Clients attach a sink object which may implement any subset of the handler
interfaces (DocumentHandler, ElementHandler, TextHandler). Which callbacks
are present is determined exactly once, when the sink is bound to an
Emitter; event dispatch afterwards is a nil-check on a function pointer,
never a repeated type assertion.

The Emitter owns the stack of currently open element tags. Pushing a tag
emits a start-element event, popping it emits the matching end-element
event. Popping an empty stack is an implementation defect and panics.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.sax'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.sax")
}
