/*
Package classify implements the first of the two parsing stages: a single
left-to-right pass over the input document which produces per-line
metadata (category, indentation, ignored flag), paragraph groupings, and
the table of reference-link definitions.

Classification needs lookbehind (setext underlines re-label the previous
line) and the walker stage needs lookahead (close decisions depend on the
following line); keeping classification as its own pass is what makes
both cheap. Classification is a pure function of the input text:
re-classifying identical text yields identical records.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.classify'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.classify")
}
