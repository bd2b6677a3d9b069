/*
Package mdstream converts Markdown-flavored plain text into an ordered
stream of structural events: document start/end, element start/end, and
character runs, delivered synchronously to a client-provided sink. No
intermediate tree is built; clients assemble whatever structure they need
from the events (SAX-style).

Parsing happens in two stages. A single forward pass classifies every
line (headings, rules, list items, quotes, code, reference definitions)
and groups paragraphs; a second pass walks the classified lines, keeps
the stack of open elements balanced, and recursively parses inline
markup with graceful degradation on malformed input.

A minimal client:

	rec := &sax.Recorder{}
	err := mdstream.Parse("# Title\n\nHello *world*.", rec, mdstream.Options{})

Sinks implement any subset of sax.DocumentHandler, sax.ElementHandler and
sax.TextHandler; absent callbacks are skipped. The whole parse runs on
the caller's goroutine, callbacks execute synchronously and reentrantly,
and a callback returning an error aborts the parse immediately. Parser
instances are stateful and single-use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mdstream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.walk'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.walk")
}
