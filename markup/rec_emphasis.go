package markup

import "strings"

// emphasisRecognizer is a tight delimiter recognizer: it probes for an
// exact run of delim repeated count times at the caret, searches
// forward for the next run of exactly the same length, and rejects
// the span if its inner body starts or ends with whitespace (an
// author writing "* not emphasis" or "not emphasis *" did not mean to
// open a span). On success it pushes an Element named tag and stashes
// the closing run's start index in scratch; Close only fires once the
// caret has walked all the way there, so content in between (however
// it nests) is free to contain its own recognized constructs,
// including further emphasis.
//
// Each delimiter length gets its own instance rather than one
// recognizer trying every length, because the three lengths name
// three different elements (em/strong/em_strong or .../strong_em) and
// because the caller-side registration order (longest run first) is
// what keeps "***bold italic***" from being misread as "**" followed
// by a stray "*".
//
// Grounded on original_source/default/emphasis.py's per-delimiter
// NodeParser classes, which share this same probe/search/reject shape.
type emphasisRecognizer struct {
	delim byte
	count int
	name  string
}

func newEmphasisRecognizer(delim byte, count int, name string) Recognizer {
	return emphasisRecognizer{delim: delim, count: count, name: name}
}

// NewEmRecognizer returns the `*text*` / single-underscore-less
// emphasis recognizer.
func NewEmRecognizer() Recognizer { return newEmphasisRecognizer('*', 1, "em") }

// NewStrongRecognizer returns the `**text**` recognizer.
func NewStrongRecognizer() Recognizer { return newEmphasisRecognizer('*', 2, "strong") }

// NewEmStrongRecognizer returns the `***text***` recognizer.
func NewEmStrongRecognizer() Recognizer { return newEmphasisRecognizer('*', 3, "em_strong") }

// NewUnderscoreEmRecognizer returns the plain `_text_` recognizer
// (distinct from SmartEm, which additionally checks word-boundary
// context to reject matches inside snake_case-like runs).
func NewUnderscoreEmRecognizer() Recognizer { return newEmphasisRecognizer('_', 1, "em") }

// NewUnderscoreStrongRecognizer returns the `__text__` recognizer.
func NewUnderscoreStrongRecognizer() Recognizer { return newEmphasisRecognizer('_', 2, "strong") }

// NewStrongEmRecognizer returns the `___text___` recognizer.
func NewStrongEmRecognizer() Recognizer { return newEmphasisRecognizer('_', 3, "strong_em") }

func (r emphasisRecognizer) Name() string {
	return strings.Repeat(string(r.delim), r.count) + "EmNP"
}

func (r emphasisRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.Cur() != r.delim || countRun(s, s.Caret, r.delim) != r.count {
		return MakeResult{}
	}
	pos := s.Pos()
	contentStart := s.Caret + r.count
	if isEmphasisBoundarySpace(s.At(contentStart)) {
		return MakeResult{}
	}
	fence := strings.Repeat(string(r.delim), r.count)
	endIdx := r.findClose(s, contentStart, fence)
	if endIdx == -1 {
		return MakeResult{}
	}
	if isEmphasisBoundarySpace(s.At(endIdx - 1)) {
		return MakeResult{}
	}
	d.Update(contentStart)
	return MakeResult{Open: NewElement(r.name, pos), Scratch: Scratch{"end": endIdx}}
}

// findClose searches from i for the next run of exactly len(fence)
// copies of the delimiter: a longer run (e.g. hitting "****" while
// looking for "**") does not count, since consuming only part of a
// longer run would silently change what the remaining delimiters mean.
func (r emphasisRecognizer) findClose(s *Scanner, i int, fence string) int {
	for {
		idx := s.Find(fence, i, s.End)
		if idx == -1 {
			return -1
		}
		if countRun(s, idx, r.delim) == len(fence) {
			return idx
		}
		i = idx + countRun(s, idx, r.delim)
	}
}

func (emphasisRecognizer) Close(_ Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	end, _ := scratch["end"].(int)
	if d.Caret != end {
		return Position{}, false
	}
	s := d.Scanner
	pos := s.Pos()
	n := countRun(s, s.Caret, s.Text[s.Caret])
	d.Update(s.Caret + n)
	return pos, true
}

func (emphasisRecognizer) Messages() map[string]string { return nil }

func isEmphasisBoundarySpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == 0
}

// smartEmRecognizer is the word-boundary-aware variant of single
// `_text_` emphasis: plain underscore emphasis alone would also fire
// inside ordinary snake_case identifiers and file names, so this
// recognizer additionally requires a non-word character (or start of
// input) immediately to the left of the opening `_`, and rejects a
// candidate closing `_` when it is immediately followed by a letter or
// `&` (the usual case of a second underscore inside the same
// identifier, e.g. "a_b_c").
//
// Grounded on original_source/default/emphasis.py's SmartEmNP.
type smartEmRecognizer struct{}

// NewSmartEmRecognizer returns the word-boundary-aware underscore
// emphasis recognizer.
func NewSmartEmRecognizer() Recognizer { return smartEmRecognizer{} }

func (smartEmRecognizer) Name() string { return "SmartEmNP" }

func (r smartEmRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.Cur() != '_' || countRun(s, s.Caret, '_') != 1 {
		return MakeResult{}
	}
	if isWordByte(s.At(s.Caret - 1)) {
		return MakeResult{}
	}
	pos := s.Pos()
	contentStart := s.Caret + 1
	if isEmphasisBoundarySpace(s.At(contentStart)) {
		return MakeResult{}
	}
	endIdx := r.findClose(s, contentStart)
	if endIdx == -1 {
		return MakeResult{}
	}
	if isEmphasisBoundarySpace(s.At(endIdx - 1)) {
		return MakeResult{}
	}
	d.Update(contentStart)
	return MakeResult{Open: NewElement("em", pos), Scratch: Scratch{"end": endIdx}}
}

// findClose looks for a lone '_' (not part of a longer run) that is
// not immediately followed by a letter or '&', since that combination
// almost always means the underscore is internal to a word rather
// than a closing delimiter.
func (r smartEmRecognizer) findClose(s *Scanner, i int) int {
	for {
		idx := s.FindByte('_', i, s.End)
		if idx == -1 {
			return -1
		}
		if countRun(s, idx, '_') == 1 {
			after := s.At(idx + 1)
			if !isLetter(after) && after != '&' {
				return idx
			}
		}
		i = idx + countRun(s, idx, '_')
	}
}

func (smartEmRecognizer) Close(_ Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	end, _ := scratch["end"].(int)
	if d.Caret != end {
		return Position{}, false
	}
	s := d.Scanner
	pos := s.Pos()
	d.Update(s.Caret + 1)
	return pos, true
}

func (smartEmRecognizer) Messages() map[string]string { return nil }

func isWordByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
