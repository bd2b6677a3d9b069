package inline

import (
	"github.com/npillmayer/mdstream/sax"
	"github.com/npillmayer/mdstream/scan"
)

// tryLink recognizes `[text](url "title")`, `[text][label]` and bare
// `[text]` at the start of s. The inline form takes priority over the
// reference form; an unresolved reference degrades to the literal text of
// the original bracket syntax.
func (p *Parser) tryLink(s string, auto bool, depth int) int {
	text, n, ok := scan.Bracketed(s)
	if !ok {
		return 0 // dangling bracket stays a literal character
	}
	rest := s[n:]

	if href, title, m, ok := scan.LinkTarget(rest); ok {
		p.anchor(href, title, text, auto, depth)
		return n + m
	}
	if label, m, ok := scan.Bracketed(rest); ok {
		if label == "" {
			label = text
		}
		if href, title, found := p.resolve(label); found {
			p.anchor(href, title, text, auto, depth)
		} else {
			tracer().Debugf("unresolved reference [%s], emitting literally", label)
			p.em.Text(s[:n+m])
		}
		return n + m
	}
	// bare [text]: shortcut reference
	if href, title, found := p.resolve(text); found {
		p.anchor(href, title, text, auto, depth)
	} else {
		p.em.Text(s[:n])
	}
	return n
}

// tryImage recognizes `![alt](url "title")` and `![alt][label]`. Images
// carry their alt text as an attribute and have no character content.
func (p *Parser) tryImage(s string) int {
	if len(s) < 2 || s[1] != '[' {
		return 0
	}
	alt, n, ok := scan.Bracketed(s[1:])
	if !ok {
		return 0
	}
	rest := s[1+n:]

	if src, title, m, ok := scan.LinkTarget(rest); ok {
		p.image(src, alt, title)
		return 1 + n + m
	}
	if label, m, ok := scan.Bracketed(rest); ok {
		if label == "" {
			label = alt
		}
		if src, title, found := p.resolve(label); found {
			p.image(src, alt, title)
		} else {
			p.em.Text(s[:1+n+m])
		}
		return 1 + n + m
	}
	return 0
}

func (p *Parser) resolve(label string) (href, title string, ok bool) {
	if p.refs == nil {
		return "", "", false
	}
	return p.refs.Lookup(label)
}

func (p *Parser) anchor(href, title, text string, auto bool, depth int) {
	attrs := []sax.Attr{{Key: sax.AttrHref, Value: href}}
	if title != "" {
		attrs = append(attrs, sax.Attr{Key: sax.AttrTitle, Value: title})
	}
	p.em.Push("a", attrs...)
	if depth >= p.maxDepth {
		p.em.Text(text)
	} else {
		p.parse(text, auto, depth+1)
	}
	p.em.Pop()
}

func (p *Parser) image(src, alt, title string) {
	attrs := []sax.Attr{{Key: sax.AttrSrc, Value: src}}
	if alt != "" {
		attrs = append(attrs, sax.Attr{Key: sax.AttrAlt, Value: alt})
	}
	if title != "" {
		attrs = append(attrs, sax.Attr{Key: sax.AttrTitle, Value: title})
	}
	p.em.Push("img", attrs...)
	p.em.Pop()
}
