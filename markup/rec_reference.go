package markup

import "strings"

// referenceBlockRecognizer recognizes a standalone reference
// definition line, `[id]: target "title"`, and turns it directly into
// a self-contained Void node carrying the id/href/title as attributes;
// nothing later in this package resolves the reference against its
// uses (that belongs to the macro-expanding stage this module does
// not implement).
//
// Grounded on original_source/default/reference.py's ReferenceBlockNP.
type referenceBlockRecognizer struct{}

// NewReferenceBlockRecognizer returns the reference-definition recognizer.
func NewReferenceBlockRecognizer() Recognizer { return referenceBlockRecognizer{} }

func (referenceBlockRecognizer) Name() string { return "ReferenceBlockNP" }

func (referenceBlockRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) || s.Cur() != '[' {
		return MakeResult{}
	}
	lineEnd := s.LineEnd(s.Caret)
	closeB := s.FindByte(']', s.Caret+1, lineEnd)
	if closeB == -1 || s.At(closeB+1) != ':' {
		return MakeResult{}
	}
	pos := s.Pos()
	id := strings.ToLower(strings.TrimSpace(s.Slice(s.Caret+1, closeB)))
	rest := s.SkipSpaceAt(closeB+2, " \t")
	target, title := splitRefTarget(s.Slice(rest, lineEnd))
	if target == "" {
		return MakeResult{}
	}
	node := &Void{Name: "address_reference", AttrList: NewAttrList(), Pos: pos}
	node.AttrList.Set("_reference_name", id)
	node.AttrList.Set("_address", target)
	if title != "" {
		node.AttrList.Set("title", title)
	}
	resume := lineEnd
	if resume < s.End {
		resume++
	}
	d.Update(resume)
	return MakeResult{List: []Node{node}}
}

func (referenceBlockRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) {
	return Position{}, false
}

func (referenceBlockRecognizer) Messages() map[string]string { return nil }

func splitRefTarget(s string) (target, title string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return s, ""
	}
	target = s[:i]
	title = strings.Trim(strings.TrimSpace(s[i+1:]), `"'`)
	return target, title
}

// referenceInlineRecognizer recognizes `[text](url "title")`,
// `[text][id]`, the collapsed `[id]` shorthand, and the `!`-prefixed
// image forms of each. Self-contained: produces an `a` Element (link
// text kept as a single literal Text child) or an `img` Void.
//
// Grounded on original_source/default/reference.py's
// ReferenceInlineNP, including its check_parity/get_inline_id helpers
// for balancing nested brackets in link text.
type referenceInlineRecognizer struct{}

// NewReferenceInlineRecognizer returns the inline-reference recognizer.
func NewReferenceInlineRecognizer() Recognizer { return referenceInlineRecognizer{} }

func (referenceInlineRecognizer) Name() string { return "ReferenceInlineNP" }

func (r referenceInlineRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	image := false
	start := s.Caret
	switch {
	case s.Cur() == '!' && s.At(s.Caret+1) == '[':
		image = true
		start = s.Caret + 1
	case s.Cur() == '[':
	default:
		return MakeResult{}
	}
	pos := s.Pos()
	textEnd, ok := checkParity(s, start+1)
	if !ok {
		return MakeResult{}
	}
	text := s.Slice(start+1, textEnd)
	i := textEnd + 1

	var href, title, refID string
	switch {
	case s.At(i) == '(':
		close := s.FindByte(')', i+1, s.End)
		if close == -1 {
			return MakeResult{}
		}
		href, title = splitRefTarget(s.Slice(i+1, close))
		i = close + 1
	case s.At(i) == '[':
		close := s.FindByte(']', i+1, s.End)
		if close == -1 {
			return MakeResult{}
		}
		refID = strings.ToLower(strings.TrimSpace(s.Slice(i+1, close)))
		if refID == "" {
			refID = strings.ToLower(strings.TrimSpace(text))
		}
		i = close + 1
	default:
		refID = strings.ToLower(strings.TrimSpace(text))
	}
	d.Update(i)

	if image {
		node := &Void{Name: "img", AttrList: NewAttrList(), Pos: pos}
		node.AttrList.Set("alt", text)
		setRefAttrs(node.AttrList, href, refID, title)
		return MakeResult{List: []Node{node}}
	}
	node := NewElement("a", pos)
	setRefAttrs(node.AttrList, href, refID, title)
	node.AppendChild(&Text{Data: text, Pos: s.Compute(start + 1)})
	return MakeResult{List: []Node{node}}
}

func setRefAttrs(attrs *AttrList, href, refID, title string) {
	if href != "" {
		attrs.Set("href", href)
	}
	if refID != "" {
		attrs.Set("data-ref", refID)
	}
	if title != "" {
		attrs.Set("title", title)
	}
}

func (referenceInlineRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) {
	return Position{}, false
}

func (referenceInlineRecognizer) Messages() map[string]string { return nil }

// checkParity finds the ']' matching the '[' implicitly opened just
// before i, honoring nested brackets within link text.
func checkParity(s *Scanner, i int) (int, bool) {
	depth := 1
	for i < s.End {
		switch s.Text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}
