package markup

import "strings"

// evalRecognizer recognizes an embedded, sink-validated code block in
// the `%%eval lang\n...\n%%` shortcut form. Its body is handed to the
// configured CodeSink (a no-op by default); any findings become
// diagnostics rather than aborting the parse, since a syntax error in
// embedded code is the document author's problem, not the parser's.
//
// Grounded on original_source/default/eval.py's EvalNP.
type evalRecognizer struct{}

// NewEvalRecognizer returns the eval-block recognizer.
func NewEvalRecognizer() Recognizer { return evalRecognizer{} }

func (evalRecognizer) Name() string { return "EvalNP" }

func (r evalRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) || !s.StartsWith("%%eval") {
		return MakeResult{}
	}
	pos := s.Pos()
	lineEnd := s.LineEnd(s.Caret)
	lang := strings.TrimSpace(s.Slice(s.Caret+len("%%eval"), lineEnd))
	bodyStart := lineEnd
	if bodyStart < s.End {
		bodyStart++
	}
	close := s.Find("\n%%", bodyStart, s.End)
	var body string
	var resume int
	if close == -1 {
		d.Sink.Record("EvalNP", "E100", pos)
		body = s.Slice(bodyStart, s.End)
		resume = s.End
	} else {
		body = s.Slice(bodyStart, close)
		resume = close + 3
	}
	node := &RawText{Name: "eval", AttrList: NewAttrList(), Data: body, Pos: pos}
	if lang != "" {
		node.AttrList.Set("data-lang", lang)
	}
	if d.Config.CodeSink != nil && lang != "" {
		for _, f := range d.Config.CodeSink.Compile(d.URI, "stmt-list", body) {
			d.Sink.Record("EvalNP", "E200", Position{Line: pos.Line + f.Line, Column: f.Column}, f.Message)
		}
	}
	d.Update(resume)
	return MakeResult{List: []Node{node}}
}

func (evalRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (evalRecognizer) Messages() map[string]string {
	return map[string]string{
		"E100": "eval block never closed with a line of '%%'",
		"E200": "embedded code did not validate: {0}",
	}
}
