package markup

import "strings"

// doctypeRecognizer recognizes `<!DOCTYPE ...>` and its `%%!DOCTYPE
// ...%%` shortcut form. Self-contained: consumed entirely by MakeNode.
//
// Grounded on original_source/default/doctype.py's DocumentTypeNP.
type doctypeRecognizer struct{}

// NewDoctypeRecognizer returns the doctype recognizer.
func NewDoctypeRecognizer() Recognizer { return doctypeRecognizer{} }

func (doctypeRecognizer) Name() string { return "DocumentTypeNP" }

func (doctypeRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	upper := strings.ToUpper(s.Peek(9))
	switch {
	case s.StartsWith("<!") && strings.HasPrefix(upper, "<!DOCTYPE"):
		close := s.FindByte('>', s.Caret+2, s.End)
		if close == -1 {
			d.Sink.Record("DocumentTypeNP", "E100", pos)
			return MakeResult{}
		}
		data := strings.TrimSpace(s.Slice(s.Caret+9, close))
		d.Update(close + 1)
		return MakeResult{List: []Node{&DocumentType{Data: data, Pos: pos}}}
	case s.StartsWith("%%!") && strings.HasPrefix(strings.ToUpper(s.Peek(10)), "%%!DOCTYPE"):
		close := s.Find("%%", s.Caret+10, s.End)
		if close == -1 {
			d.Sink.Record("DocumentTypeNP", "E100", pos)
			return MakeResult{}
		}
		data := strings.TrimSpace(s.Slice(s.Caret+10, close))
		d.Update(close + 2)
		return MakeResult{List: []Node{&DocumentType{Data: data, Pos: pos}}}
	default:
		return MakeResult{}
	}
}

func (doctypeRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (doctypeRecognizer) Messages() map[string]string {
	return map[string]string{"E100": "DOCTYPE declaration not properly closed"}
}
