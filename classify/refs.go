package classify

import (
	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
)

// RefTable holds reference-link definitions, keyed by case-folded label.
// A label defined twice keeps the later definition.
type RefTable struct {
	folder cases.Caser
	labels *trie.Trie
	count  int
}

type refEntry struct {
	href  string
	title string
}

// NewRefTable creates an empty reference table.
func NewRefTable() *RefTable {
	return &RefTable{
		folder: cases.Fold(),
		labels: trie.New(),
	}
}

// Add records a definition for label, replacing any earlier one.
func (t *RefTable) Add(label, href, title string) {
	key := t.folder.String(label)
	if _, exists := t.labels.Find(key); !exists {
		t.count++
	}
	t.labels.Add(key, refEntry{href: href, title: title})
}

// Lookup resolves a label case-insensitively.
func (t *RefTable) Lookup(label string) (href, title string, ok bool) {
	node, found := t.labels.Find(t.folder.String(label))
	if !found {
		return "", "", false
	}
	entry := node.Meta().(refEntry)
	return entry.href, entry.title, true
}

// Len returns the number of distinct labels.
func (t *RefTable) Len() int {
	return t.count
}
