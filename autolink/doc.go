/*
Package autolink detects bare URLs and phone numbers in runs of plain
text, so the inline parser can turn them into anchor elements without any
explicit Markdown link syntax.

Detection is a capability: clients may provide their own Detector.
The default detector combines a relaxed URL grammar with a word
segmentation pass (UAX#29) that proposes phone-number candidates.
Detectors must be synchronous and free of observable side effects.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package autolink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdstream.autolink'.
func tracer() tracing.Trace {
	return tracing.Select("mdstream.autolink")
}
