package inline

import (
	"strings"
	"testing"

	"github.com/npillmayer/mdstream/autolink"
	"github.com/npillmayer/mdstream/sax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type refmap map[string][2]string

func (m refmap) Lookup(label string) (string, string, bool) {
	entry, ok := m[strings.ToLower(label)]
	return entry[0], entry[1], ok
}

func parseInline(text string, refs RefLookup, det autolink.Detector) []string {
	rec := &sax.Recorder{}
	em := sax.NewEmitter(rec)
	p := New(em, refs, det, 0)
	p.ParseLine(text, det != nil)
	return rec.Events
}

func TestEmphasisAndStrong(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("*em* and **strong**", nil, nil)
	assert.Equal(t, []string{
		"<em>", `"em"`, "</em>",
		`" and "`,
		"<strong>", `"strong"`, "</strong>",
	}, events)
}

func TestEmphasisVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	assert.Equal(t, []string{"<em>", `"u"`, "</em>"}, parseInline("_u_", nil, nil))
	assert.Equal(t, []string{"<strong>", `"u"`, "</strong>"}, parseInline("__u__", nil, nil))
	assert.Equal(t, []string{"<del>", `"gone"`, "</del>"}, parseInline("~~gone~~", nil, nil))
}

func TestNestedEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("**a *b* c**", nil, nil)
	assert.Equal(t, []string{
		"<strong>", `"a "`, "<em>", `"b"`, "</em>", `" c"`, "</strong>",
	}, events)
}

func TestCodeSpanIsLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("`a *b* [c]`", nil, nil)
	assert.Equal(t, []string{"<code>", `"a *b* [c]"`, "</code>"}, events)
}

func TestUnclosedMarkerStaysLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("*abc", nil, nil)
	assert.Equal(t, []string{`"*"`, `"abc"`}, events)
	// a single tilde is no marker at all
	events = parseInline("~x", nil, nil)
	assert.Equal(t, []string{`"~"`, `"x"`}, events)
}

func TestInlineLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline(`[x](http://e.com "T")`, nil, nil)
	assert.Equal(t, []string{
		`<a href="http://e.com" title="T">`, `"x"`, "</a>",
	}, events)
}

func TestReferenceLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	refs := refmap{"1": {"http://e.com", "T"}}
	events := parseInline("[x][1]", refs, nil)
	assert.Equal(t, []string{
		`<a href="http://e.com" title="T">`, `"x"`, "</a>",
	}, events)
	// shortcut form
	refs = refmap{"x": {"http://e.com", ""}}
	events = parseInline("[x]", refs, nil)
	assert.Equal(t, []string{`<a href="http://e.com">`, `"x"`, "</a>"}, events)
}

func TestUnresolvedReferenceDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("[x][missing]", refmap{}, nil)
	assert.Equal(t, []string{`"[x][missing]"`}, events)
	//
	events = parseInline("before [x] after", refmap{}, nil)
	assert.Equal(t, []string{`"before "`, `"[x]"`, `" after"`}, events)
}

func TestDanglingBracketIsLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("a [ b", nil, nil)
	assert.Equal(t, []string{`"a "`, `"["`, `" b"`}, events)
}

func TestImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline(`![alt text](/img.png "T")`, nil, nil)
	assert.Equal(t, []string{
		`<img src="/img.png" alt="alt text" title="T">`, "</img>",
	}, events)
	//
	refs := refmap{"logo": {"/logo.png", ""}}
	events = parseInline("![the logo][logo]", refs, nil)
	assert.Equal(t, []string{`<img src="/logo.png" alt="the logo">`, "</img>"}, events)
}

func TestAngleAutolink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	events := parseInline("<http://e.com>", nil, nil)
	assert.Equal(t, []string{`<a href="http://e.com">`, `"http://e.com"`, "</a>"}, events)
	// not a URL: stays literal
	events = parseInline("a < b", nil, nil)
	assert.Equal(t, []string{`"a "`, `"<"`, `" b"`}, events)
}

// spanAt is a canned detector for testing the routing.
type spanAt struct {
	spans map[string][]autolink.Span
}

func (d *spanAt) Detect(text string) []autolink.Span {
	return d.spans[text]
}

func TestAutodetectRouting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	det := &spanAt{spans: map[string][]autolink.Span{
		"see e.com now": {{Start: 4, End: 9, URL: "http://e.com"}},
	}}
	events := parseInline("see e.com now", nil, det)
	assert.Equal(t, []string{
		`"see "`, `<a href="http://e.com">`, `"e.com"`, "</a>", `" now"`,
	}, events)
}

func TestRecursionDepthIsBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.inline")
	defer teardown()
	//
	rec := &sax.Recorder{}
	em := sax.NewEmitter(rec)
	p := New(em, nil, nil, 1)
	p.ParseLine("**a *b `c` d* e**", false)
	assert.Equal(t, []string{
		"<strong>", `"a "`, "<em>", "\"b `c` d\"", "</em>", `" e"`, "</strong>",
	}, rec.Events)
}
