package markup

import "unicode/utf8"

// quoteRecognizer turns a straight `'` or `"` into the appropriate
// curly-quote Entity, choosing open vs. close by looking at the
// character immediately before the caret: start-of-content,
// whitespace, an opening bracket, '-', '/', an em dash or an en dash
// opens; anything else (a letter, a digit, other punctuation) closes.
//
// Grounded on original_source/default/quote.py's QuoteNP.
type quoteRecognizer struct{}

// NewQuoteRecognizer returns the smart-quote recognizer.
func NewQuoteRecognizer() Recognizer { return quoteRecognizer{} }

func (quoteRecognizer) Name() string { return "QuoteNP" }

func (r quoteRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	c := s.Cur()
	if c != '\'' && c != '"' {
		return MakeResult{}
	}
	pos := s.Pos()
	opening := r.opensQuote(s)
	var data string
	switch {
	case c == '\'' && opening:
		data = "‘"
	case c == '\'' && !opening:
		data = "’"
	case c == '"' && opening:
		data = "“"
	default:
		data = "”"
	}
	d.Update(s.Caret + 1)
	return MakeResult{List: []Node{&Entity{Data: data, Raw: string(c), Pos: pos}}}
}

func (quoteRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (quoteRecognizer) Messages() map[string]string { return nil }

func (quoteRecognizer) opensQuote(s *Scanner) bool {
	if s.Caret == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s.Text[:s.Caret])
	switch prev {
	case ' ', '\t', '\n', '(', '[', '{', '-', '/', '—', '–':
		return true
	default:
		return false
	}
}
