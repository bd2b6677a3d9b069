package sax

// Attribute keys produced by the walker and the inline parser.
const (
	AttrHref  = "href"
	AttrTitle = "title"
	AttrSrc   = "src"
	AttrAlt   = "alt"
)

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered list of element attributes. Order is part of the
// protocol: clients receive attributes in the order the parser produced them.
type Attributes []Attr

// Get returns the value for a key, if present.
func (a Attributes) Get(key string) (string, bool) {
	for _, att := range a {
		if att.Key == key {
			return att.Value, true
		}
	}
	return "", false
}

// DocumentHandler receives document boundary events.
type DocumentHandler interface {
	StartDocument() error
	EndDocument() error
}

// ElementHandler receives element boundary events.
type ElementHandler interface {
	StartElement(name string, attrs Attributes) error
	EndElement(name string) error
}

// TextHandler receives character data.
type TextHandler interface {
	Characters(text string) error
}

// callbacks is the capability set of a sink, computed once at attach time.
// A nil entry means the sink does not implement the callback.
type callbacks struct {
	startDoc  func() error
	endDoc    func() error
	startElem func(string, Attributes) error
	endElem   func(string) error
	chars     func(string) error
}

func bind(sink interface{}) callbacks {
	var cb callbacks
	if h, ok := sink.(DocumentHandler); ok {
		cb.startDoc = h.StartDocument
		cb.endDoc = h.EndDocument
	}
	if h, ok := sink.(ElementHandler); ok {
		cb.startElem = h.StartElement
		cb.endElem = h.EndElement
	}
	if h, ok := sink.(TextHandler); ok {
		cb.chars = h.Characters
	}
	return cb
}
