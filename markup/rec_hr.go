package markup

import "regexp"

var hrRegexp = regexp.MustCompile(`^[ \t]*(?:(?:\*[ \t]*){3,}|(?:-[ \t]*){3,}|(?:_[ \t]*){3,})(\n|$)`)

// hrRecognizer recognizes a horizontal rule: a line containing three
// or more of the same character among '*', '-', '_', optionally
// separated by spaces, and nothing else.
//
// Grounded on original_source/default/hr.py's HrNP. Also called
// directly (not through the registry) from rec_meta.go, the way the
// original's MetaNP borrows HrNP.make_node to recognize the rule that
// can end a meta block.
type hrRecognizer struct{}

// NewHrRecognizer returns the horizontal-rule recognizer.
func NewHrRecognizer() Recognizer { return hrRecognizer{} }

func (hrRecognizer) Name() string { return "HrNP" }

func (r hrRecognizer) MakeNode(d *Dispatcher) MakeResult {
	node, ok := TryHorizontalRule(d)
	if !ok {
		return MakeResult{}
	}
	return MakeResult{List: []Node{node}}
}

func (hrRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (hrRecognizer) Messages() map[string]string { return nil }

// TryHorizontalRule is the free-function form other recognizers call
// directly (MetaNP's end-of-block check) rather than going through the
// registry by name.
func TryHorizontalRule(d *Dispatcher) (Node, bool) {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return nil, false
	}
	m := s.MatchIndexAt(hrRegexp, s.Caret)
	if m == nil {
		return nil, false
	}
	pos := s.Pos()
	d.Update(s.Caret + m[1])
	return &Void{Name: "hr", AttrList: NewAttrList(), Pos: pos}, true
}
