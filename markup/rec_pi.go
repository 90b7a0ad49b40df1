package markup

import "strings"

// piRecognizer recognizes a `<?target data?>` processing instruction
// and its `%%?target data%%` shortcut form. Self-contained.
//
// Grounded on original_source/default/pi.py's ProcessingInstructionNP.
type piRecognizer struct{}

// NewProcessingInstructionRecognizer returns the PI recognizer.
func NewProcessingInstructionRecognizer() Recognizer { return piRecognizer{} }

func (piRecognizer) Name() string { return "ProcessingInstructionNP" }

func (piRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	switch {
	case s.StartsWith("<?"):
		close := s.Find("?>", s.Caret+2, s.End)
		if close == -1 {
			d.Sink.Record("ProcessingInstructionNP", "E100", pos)
			return MakeResult{}
		}
		target, data := splitPI(s.Slice(s.Caret+2, close))
		d.Update(close + 2)
		return MakeResult{List: []Node{&ProcessingInstruction{Target: target, Data: data, Pos: pos}}}
	case s.StartsWith("%%?"):
		close := s.Find("%%", s.Caret+3, s.End)
		if close == -1 {
			d.Sink.Record("ProcessingInstructionNP", "E100", pos)
			return MakeResult{}
		}
		target, data := splitPI(s.Slice(s.Caret+3, close))
		d.Update(close + 2)
		return MakeResult{List: []Node{&ProcessingInstruction{Target: target, Data: data, Pos: pos}}}
	default:
		return MakeResult{}
	}
}

func (piRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (piRecognizer) Messages() map[string]string {
	return map[string]string{"E100": "processing instruction not properly closed"}
}

func splitPI(body string) (target, data string) {
	body = strings.TrimSpace(body)
	i := strings.IndexAny(body, " \t")
	if i == -1 {
		return body, ""
	}
	return body[:i], strings.TrimSpace(body[i+1:])
}
