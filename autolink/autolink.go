package autolink

import (
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"mvdan.cc/xurls/v2"
)

// Span marks a detected link within a run of text. Start and End are byte
// offsets into the run; URL is the href to emit, which may differ from the
// covered text (e.g. an added scheme, or a `tel:` URL).
type Span struct {
	Start int
	End   int
	URL   string
}

// Detector finds link-worthy spans in a run of plain text. Returned spans
// must be ordered by Start and non-overlapping.
type Detector interface {
	Detect(text string) []Span
}

// phone numbers: a leading `+` or digit, then digits with sparse
// punctuation, at least 7 digits overall
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,}[0-9]$`)

type detector struct {
	urls *regexp.Regexp
}

// Default returns the built-in detector: bare URLs and domains via a
// relaxed URL grammar, phone numbers via word segmentation.
func Default() Detector {
	return &detector{urls: xurls.Relaxed()}
}

func (d *detector) Detect(text string) []Span {
	var spans []Span
	for _, m := range d.urls.FindAllStringIndex(text, -1) {
		match := text[m[0]:m[1]]
		href := match
		if !strings.Contains(href, "://") && !strings.HasPrefix(href, "mailto:") {
			href = "http://" + href
		}
		spans = append(spans, Span{Start: m[0], End: m[1], URL: href})
	}
	spans = append(spans, d.phones(text)...)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	spans = dropOverlaps(spans)
	if len(spans) > 0 {
		tracer().Debugf("autolink: %d span(s) in %q", len(spans), text)
	}
	return spans
}

// phones segments the run into words (UAX#29) and matches each candidate
// token against the phone grammar. Segments tile the input, so offsets are
// recovered by accumulating segment lengths.
func (d *detector) phones(text string) []Span {
	var spans []Span
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(text))
	pos := 0
	for seg.Next() {
		token := seg.Text()
		start := pos
		pos += len(token)
		token = strings.TrimSpace(token)
		if token == "" || !phonePattern.MatchString(token) {
			continue
		}
		spans = append(spans, Span{
			Start: start,
			End:   start + len(token),
			URL:   "tel:" + strings.Map(keepDialable, token),
		})
	}
	return spans
}

func keepDialable(r rune) rune {
	if r == '+' || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}

// dropOverlaps keeps the earlier span whenever two overlap; input must be
// sorted by Start.
func dropOverlaps(spans []Span) []Span {
	out := spans[:0]
	end := 0
	for _, sp := range spans {
		if sp.Start < end {
			continue
		}
		out = append(out, sp)
		end = sp.End
	}
	return out
}
