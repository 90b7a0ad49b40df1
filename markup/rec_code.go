package markup

import "strings"

// codeInlineRecognizer recognizes a backtick-delimited inline code
// span: an opening run of N backticks, closed by the next run of
// backticks whose length is at least N. When the closing run is
// longer than the opening one, only the first N backticks of it are
// consumed as the closer (the remainder stays literal, directly
// abutting the closed span) and the ambiguity is reported, since a
// reader cannot tell from the source alone whether the author meant a
// shorter or longer fence. When no closing run is found at all, the
// opening run is reported once and emitted as literal text.
//
// Grounded on original_source/default/code.py's CodeInlineNP.
type codeInlineRecognizer struct{}

// NewCodeInlineRecognizer returns the inline-code recognizer.
func NewCodeInlineRecognizer() Recognizer { return codeInlineRecognizer{} }

func (codeInlineRecognizer) Name() string { return "CodeInlineNP" }

func (r codeInlineRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.Cur() != '`' {
		return MakeResult{}
	}
	pos := s.Pos()
	openLen := countRun(s, s.Caret, '`')
	contentStart := s.Caret + openLen

	closeAt, closeLen, ok := r.findFence(s, contentStart, openLen)
	if !ok {
		d.Sink.Record("CodeInlineNP", "E101", pos, openLen)
		d.Update(contentStart)
		return MakeResult{List: []Node{&Text{Data: s.Slice(contentStart-openLen, contentStart), Pos: pos}}}
	}

	var data string
	var consumedEnd int
	if closeLen == openLen {
		data = s.Slice(contentStart, closeAt)
		consumedEnd = closeAt + closeLen
	} else {
		d.Sink.Record("CodeInlineNP", "E100", pos, openLen, closeLen)
		data = s.Slice(contentStart, closeAt)
		consumedEnd = closeAt + openLen
	}
	data = trimCodeSpan(data)
	d.Update(consumedEnd)
	return MakeResult{List: []Node{&RawText{Name: "code", Data: data, AttrList: NewAttrList(), Pos: pos}}}
}

func (codeInlineRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (codeInlineRecognizer) Messages() map[string]string {
	return map[string]string{
		"E100": "closing backtick run ({1}) longer than opening run ({0}); treating as ambiguous",
		"E101": "inline code span opened with {0} backtick(s) never closed",
	}
}

// findFence searches forward from i for a run of backticks at least
// openLen long, returning its start index and actual length.
func (codeInlineRecognizer) findFence(s *Scanner, i, openLen int) (int, int, bool) {
	for i < s.End {
		idx := s.FindByte('`', i, s.End)
		if idx == -1 {
			return 0, 0, false
		}
		n := countRun(s, idx, '`')
		if n >= openLen {
			return idx, n, true
		}
		i = idx + n
	}
	return 0, 0, false
}

func countRun(s *Scanner, i int, b byte) int {
	n := 0
	for s.At(i+n) == b {
		n++
	}
	return n
}

// trimCodeSpan strips exactly one leading and one trailing space when
// the span's content both starts and ends with a space and is not
// entirely whitespace, the usual convention that lets a code span
// itself begin or end with a backtick (`` `x` ``).
func trimCodeSpan(data string) string {
	if len(data) >= 2 && data[0] == ' ' && data[len(data)-1] == ' ' && strings.TrimSpace(data) != "" {
		return data[1 : len(data)-1]
	}
	return data
}
