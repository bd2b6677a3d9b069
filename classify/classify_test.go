package classify

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func cats(r *Result) []Category {
	out := make([]Category, len(r.Lines))
	for i, ln := range r.Lines {
		out[i] = ln.Cat
	}
	return out
}

func TestClassifySetext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("Title\n=====\nSub\n---\n")
	assert.Equal(t, []Category{H1, None, H2, None}, cats(r))
	assert.True(t, r.Lines[1].Ignored, "underline lines are ignored")
	assert.True(t, r.Lines[3].Ignored)
	assert.Equal(t, []Paragraph{{0, 0}, {2, 2}}, r.Paras)
}

func TestClassifyHR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("text\n\n- - -\n")
	assert.Equal(t, []Category{None, None, HR}, cats(r))
	// a rule with a 3+ space run is no rule
	r = Classify("text\n\n_    _\n")
	assert.Equal(t, None, r.Lines[2].Cat)
}

func TestClassifySetextBeatsHR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("text\n---\n")
	assert.Equal(t, H2, r.Lines[0].Cat, "a dash underline below text is a setext heading")
	assert.True(t, r.Lines[1].Ignored)
}

func TestClassifySetextOnlyAfterPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	// an underline cannot re-label an already-structural line
	r := Classify("# x\n===\n")
	assert.Equal(t, []Category{Heading, None}, cats(r))
	assert.False(t, r.Lines[1].Ignored)
	assert.Equal(t, []Paragraph{{0, 0}, {1, 1}}, r.Paras)
	//
	r = Classify("    code\n---\n")
	assert.Equal(t, []Category{Pre, HR}, cats(r))
}

func TestClassifyRefDef(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("[x][1]\n\n[1]: http://e.com \"T\"\n")
	assert.True(t, r.Lines[2].Ignored)
	href, title, ok := r.Refs.Lookup("1")
	assert.True(t, ok)
	assert.Equal(t, "http://e.com", href)
	assert.Equal(t, "T", title)
}

func TestRefTableCaseFoldingAndLastWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("[Foo]: http://one\n[FOO]: http://two\n")
	assert.Equal(t, 1, r.Refs.Len())
	href, _, ok := r.Refs.Lookup("foo")
	assert.True(t, ok)
	assert.Equal(t, "http://two", href, "the last definition wins")
}

func TestClassifyIndentedCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("    a\n    b\ntext\n\n    c\n")
	assert.Equal(t, []Category{Pre, Pre, None, None, Pre}, cats(r))
	// indented text directly after a paragraph line is not code
	r = Classify("text\n    more\n")
	assert.Equal(t, None, r.Lines[1].Cat)
}

func TestClassifyFenceToggle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("```\ncode\n--- not a rule\n```\n")
	assert.Equal(t, []Category{FencedStart, FencedCode, FencedCode, FencedEnd}, cats(r))
}

func TestClassifyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("- a\n- b\n    - nested\n")
	assert.Equal(t, []Category{List, List, SubList}, cats(r))
	assert.Equal(t, 4, r.Lines[2].Indent)
	// a continuation at the same indent is SubList, too
	r = Classify("- a\ncont\n")
	assert.Equal(t, []Category{List, SubList}, cats(r))
}

func TestClassifyBlankSeparatesParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("a\nb\n\nc\n")
	assert.True(t, r.Lines[2].Ignored)
	assert.Equal(t, []Paragraph{{0, 1}, {3, 3}}, r.Paras)
	first, last, ok := r.ParaBounds(1)
	assert.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, last)
}

func TestClassifyCRLF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	r := Classify("# Title\r\ntext\r\n")
	assert.Equal(t, Heading, r.Lines[0].Cat)
	assert.Equal(t, "# Title", r.Text(0))
	assert.Equal(t, "text", r.Text(1))
}

func TestClassifyIsPure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	input := "# h\n\n- a\n    - b\n\n> quote\n\n```\ncode\n```\n[1]: http://e.com\n"
	r1 := Classify(input)
	r2 := Classify(input)
	if !reflect.DeepEqual(r1.Lines, r2.Lines) {
		t.Errorf("line records differ between identical runs")
	}
	if !reflect.DeepEqual(r1.Paras, r2.Paras) {
		t.Errorf("paragraph ranges differ between identical runs")
	}
}

func TestClassifyCoversContiguously(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdstream.classify")
	defer teardown()
	//
	input := "a\n\n  b\r\nc"
	r := Classify(input)
	pos := 0
	for i, ln := range r.Lines {
		if ln.Start != pos {
			t.Fatalf("line %d starts at %d, expected %d", i, ln.Start, pos)
		}
		pos = ln.End
		if ln.End < len(input) && input[ln.End] == '\r' {
			pos++
		}
		if ln.EOL {
			pos++
		}
	}
	assert.Equal(t, len(input), pos)
}
