/*
Package inline parses the inline markup of one line of block content:
emphasis, strong, strike-through, code spans, links, images and
autodetected bare links. It is a recursive-descent scanner over the
marker set `* _ ~ [ ! ` <`.

Malformed inline syntax never aborts a parse. An unclosed marker, a
dangling bracket or an unresolvable reference degrades to literal text at
the narrowest possible scope, and scanning resumes right behind it.
Recursion over nested emphasis is depth-bounded; enclosed text beyond the
bound is emitted literally.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.inline'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.inline")
}
