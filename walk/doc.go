/*
Package walk implements the second parsing stage: the block walker
iterates the classified lines, owns all open/close decisions for block
elements, delegates list lines to the list engine and hands block content
to the inline parser.

The walker never aborts on malformed structure. After the final line it
drains every still-open tag, so the emitted event stream is balanced for
arbitrary input, truncated or not.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package walk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.walk'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.walk")
}
