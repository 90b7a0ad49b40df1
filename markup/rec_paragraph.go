package markup

import "strings"

// paragraphInterruptTags names tags that end an open paragraph the
// moment they appear, rather than being swallowed as paragraph text;
// everything else is presumed inline and stays inside the paragraph.
//
// Grounded on original_source/default/paragraph.py's VALID_TAGS /
// INVALID_TAGS split.
var paragraphInterruptTags = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "li": true,
	"blockquote": true, "pre": true, "table": true, "section": true,
	"article": true, "header": true, "footer": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true,
}

// paragraphRecognizer is the block-level catch-all: wherever nothing
// more specific applies and the line is not blank, it opens a `p`
// element and lets dispatch continue inside it. It closes on the
// first blank line or the first interrupting tag.
//
// Grounded on original_source/default/paragraph.py's ParagraphNP.
type paragraphRecognizer struct{}

// NewParagraphRecognizer returns the paragraph recognizer. It must be
// registered last in any block-level recognizer list: every more
// specific recognizer gets first refusal.
func NewParagraphRecognizer() Recognizer { return paragraphRecognizer{} }

func (paragraphRecognizer) Name() string { return "ParagraphNP" }

func (r paragraphRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if blank, _ := SkipBlankLine(s, s.Caret); blank {
		return MakeResult{}
	}
	if name, ok := peekTagName(s); ok && paragraphInterruptTags[strings.ToLower(name)] {
		return MakeResult{}
	}
	pos := s.Pos()
	return MakeResult{Open: NewElement("p", pos)}
}

func (r paragraphRecognizer) Close(_ Node, d *Dispatcher, _ Scratch) (Position, bool) {
	s := d.Scanner
	if blank, next := SkipBlankLine(s, s.Caret); blank {
		pos := s.Pos()
		d.Update(next)
		return pos, true
	}
	if name, ok := peekTagName(s); ok && paragraphInterruptTags[strings.ToLower(name)] {
		return s.Pos(), true
	}
	return Position{}, false
}

func (paragraphRecognizer) Messages() map[string]string { return nil }

// peekTagName reports the tag name at the caret, for either an
// opening or closing tag, without consuming anything.
func peekTagName(s *Scanner) (string, bool) {
	if s.Cur() != '<' {
		return "", false
	}
	i := s.Caret + 1
	if i < s.End && s.Text[i] == '/' {
		i++
	}
	if i >= s.End || !isNameStart(s.Text[i]) {
		return "", false
	}
	name, _ := readTagName(s, i)
	return name, true
}
