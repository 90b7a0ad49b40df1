package markup

// commentRecognizer recognizes self-contained comments in either the
// HTML-derived `<!-- ... -->` form or the `%%! ... %%` shortcut form.
// A comment is always fully consumed by MakeNode; there is nothing to
// Close later.
//
// Grounded on original_source/default/comment.py's CommentNP.
type commentRecognizer struct{}

// NewCommentRecognizer returns the comment recognizer.
func NewCommentRecognizer() Recognizer { return commentRecognizer{} }

func (commentRecognizer) Name() string { return "CommentNP" }

func (commentRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	switch {
	case s.StartsWith("<!--"):
		close := s.Find("-->", s.Caret+4, s.End)
		if close == -1 {
			d.Sink.Record("CommentNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+4, close)
		d.Update(close + 3)
		return MakeResult{List: []Node{&Comment{Data: data, Pos: pos}}}
	case s.StartsWith("%%!") && !s.StartsWithAt(s.Caret+3, "DOCTYPE"):
		close := s.Find("%%", s.Caret+3, s.End)
		if close == -1 {
			d.Sink.Record("CommentNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+3, close)
		d.Update(close + 2)
		return MakeResult{List: []Node{&Comment{Data: data, Pos: pos}}}
	default:
		return MakeResult{}
	}
}

func (commentRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (commentRecognizer) Messages() map[string]string {
	return map[string]string{"E100": "comment not properly closed"}
}
