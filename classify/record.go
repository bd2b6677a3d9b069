package classify

// Category is the block-level classification of a single input line.
type Category int8

const (
	None Category = iota
	H1
	H2
	Heading
	HR
	Pre
	FencedStart
	FencedCode
	FencedEnd
	List
	SubList
)

var categoryNames = []string{"None", "H1", "H2", "Heading", "HR", "Pre",
	"FencedStart", "FencedCode", "FencedEnd", "List", "SubList"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// LineRecord is the classification result for one physical line. Records
// cover the document contiguously and are immutable after classification.
type LineRecord struct {
	Start   int // byte offset of the line's first character
	End     int // byte offset past the line's last character, excluding EOL
	Cat     Category
	Indent  int  // leading whitespace in space units, tab = 4
	Ignored bool // blank lines, setext underlines, reference definitions
	EOL     bool // physical line was terminated by a newline
}

// Paragraph is a block grouping: a maximal run of non-ignored lines,
// split before HR, heading and list-starting lines. First and Last are
// line indices, both inclusive.
type Paragraph struct {
	First int
	Last  int
}
