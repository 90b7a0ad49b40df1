package markup

// latexInlineRecognizer recognizes `$...$` and `\(...\)` inline math.
// Self-contained: the whole span, delimiters excluded, becomes one
// RawText node's data so a writer never re-scans math for markup.
//
// Grounded on original_source/default/latex.py's LatexInlineNP.
type latexInlineRecognizer struct{}

// NewLatexInlineRecognizer returns the inline-math recognizer.
func NewLatexInlineRecognizer() Recognizer { return latexInlineRecognizer{} }

func (latexInlineRecognizer) Name() string { return "LatexInlineNP" }

func (r latexInlineRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	switch {
	case s.Cur() == '$' && s.At(s.Caret+1) != '$':
		close := s.FindByte('$', s.Caret+1, s.End)
		if close == -1 {
			d.Sink.Record("LatexInlineNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+1, close)
		d.Update(close + 1)
		return MakeResult{List: []Node{&RawText{Name: "latex", AttrList: NewAttrList(), Data: data, Pos: pos}}}
	case s.StartsWith(`\(`):
		close := s.Find(`\)`, s.Caret+2, s.End)
		if close == -1 {
			d.Sink.Record("LatexInlineNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+2, close)
		d.Update(close + 2)
		return MakeResult{List: []Node{&RawText{Name: "latex", AttrList: NewAttrList(), Data: data, Pos: pos}}}
	default:
		return MakeResult{}
	}
}

func (latexInlineRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (latexInlineRecognizer) Messages() map[string]string {
	return map[string]string{"E100": "inline math span never closed"}
}

// latexDisplayRecognizer recognizes `$$...$$` and `\[...\]` display
// math, the block-level counterpart of latexInlineRecognizer.
//
// Grounded on original_source/default/latex.py's LatexDisplayNP.
type latexDisplayRecognizer struct{}

// NewLatexDisplayRecognizer returns the display-math recognizer.
func NewLatexDisplayRecognizer() Recognizer { return latexDisplayRecognizer{} }

func (latexDisplayRecognizer) Name() string { return "LatexDisplayNP" }

func (r latexDisplayRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	switch {
	case s.StartsWith("$$"):
		close := s.Find("$$", s.Caret+2, s.End)
		if close == -1 {
			d.Sink.Record("LatexDisplayNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+2, close)
		d.Update(close + 2)
		return MakeResult{List: []Node{&RawText{Name: "latex-display", AttrList: NewAttrList(), Data: data, Pos: pos}}}
	case s.StartsWith(`\[`):
		close := s.Find(`\]`, s.Caret+2, s.End)
		if close == -1 {
			d.Sink.Record("LatexDisplayNP", "E100", pos)
			return MakeResult{}
		}
		data := s.Slice(s.Caret+2, close)
		d.Update(close + 2)
		return MakeResult{List: []Node{&RawText{Name: "latex-display", AttrList: NewAttrList(), Data: data, Pos: pos}}}
	default:
		return MakeResult{}
	}
}

func (latexDisplayRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (latexDisplayRecognizer) Messages() map[string]string {
	return map[string]string{"E100": "display math block never closed"}
}
