package markup

// emptyRecognizer recognizes a blank line (optional horizontal
// whitespace followed by '\n' or end of input) and consumes it without
// producing a node. Several block recognizers delegate their own
// "has the blank line that ends me arrived" check to SkipBlankLine
// rather than duplicating this scan.
//
// Grounded on original_source/default/empty.py's EmptyNP.
type emptyRecognizer struct{}

// NewEmptyRecognizer returns the blank-line recognizer.
func NewEmptyRecognizer() Recognizer { return emptyRecognizer{} }

func (emptyRecognizer) Name() string { return "EmptyNP" }

func (r emptyRecognizer) MakeNode(d *Dispatcher) MakeResult {
	if ok, next := r.scanBlank(d.Scanner); ok {
		d.Update(next)
		return MakeResult{List: []Node{}}
	}
	return MakeResult{}
}

func (emptyRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (emptyRecognizer) Messages() map[string]string { return nil }

// scanBlank reports whether the line starting at the caret is blank
// and, if so, the index just past its terminating newline (or End).
func (emptyRecognizer) scanBlank(s *Scanner) (bool, int) {
	i := s.Caret
	for i < s.End && (s.Text[i] == ' ' || s.Text[i] == '\t') {
		i++
	}
	if i >= s.End {
		return i > s.Caret, i
	}
	if s.Text[i] == '\n' {
		return true, i + 1
	}
	return false, s.Caret
}

// SkipBlankLine is the shared helper other recognizers call (the
// analogue of original_source's `EmptyNP.skip_space`/parser registry
// lookup): it reports whether a blank line begins at i, without
// touching the scanner's caret.
func SkipBlankLine(s *Scanner, i int) (bool, int) {
	j := i
	for j < s.End && (s.Text[j] == ' ' || s.Text[j] == '\t') {
		j++
	}
	if j >= s.End {
		return true, j
	}
	if s.Text[j] == '\n' {
		return true, j + 1
	}
	return false, i
}
