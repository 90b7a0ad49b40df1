package markup

import (
	"regexp"
	"strings"
)

// Scanner holds the source text for a single document along with the
// shared cursor ("caret") that every recognizer reads from and advances.
//
// Position bookkeeping follows the same byte-counting loop the teacher
// uses for its own line/column recovery (see org/document.go's
// calculatePosition): a single forward scan counting '\n' bytes, not a
// rune-aware decode, since a caret index is itself a byte offset here.
type Scanner struct {
	Text string
	URI  string
	Caret int
	End   int
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text, uri string) *Scanner {
	return &Scanner{Text: text, URI: uri, Caret: 0, End: len(text)}
}

// InternalError reports a violation of a dispatcher/scanner invariant.
// These are programming errors, not document diagnostics, and are
// expected to propagate as panics per the dispatch contract.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return e.Msg }

// At returns the byte at absolute index i, or 0 if i is out of [0,End).
func (s *Scanner) At(i int) byte {
	if i < 0 || i >= s.End {
		return 0
	}
	return s.Text[i]
}

// Cur returns the byte under the caret, or 0 at end of input.
func (s *Scanner) Cur() byte { return s.At(s.Caret) }

// Peek returns up to n bytes starting at the caret, clamped to End.
func (s *Scanner) Peek(n int) string {
	end := s.Caret + n
	if end > s.End {
		end = s.End
	}
	if s.Caret >= end {
		return ""
	}
	return s.Text[s.Caret:end]
}

// Slice returns text[from:to], clamped to the valid range. from > to
// (after clamping) returns "".
func (s *Scanner) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > s.End {
		to = s.End
	}
	if from >= to {
		return ""
	}
	return s.Text[from:to]
}

// StartsWith reports whether the text at the caret begins with sub.
func (s *Scanner) StartsWith(sub string) bool {
	return strings.HasPrefix(s.Text[s.Caret:s.End], sub)
}

// StartsWithAt reports whether the text at i begins with sub.
func (s *Scanner) StartsWithAt(i int, sub string) bool {
	if i < 0 || i > s.End {
		return false
	}
	return strings.HasPrefix(s.Text[i:s.End], sub)
}

// Find returns the index of the first occurrence of sub in [from, to),
// or -1. to <= 0 means "search to End".
func (s *Scanner) Find(sub string, from, to int) int {
	if to <= 0 || to > s.End {
		to = s.End
	}
	if from < 0 {
		from = s.Caret
	}
	if from > to {
		return -1
	}
	idx := strings.Index(s.Text[from:to], sub)
	if idx == -1 {
		return -1
	}
	return from + idx
}

// FindByte is Find for a single delimiter byte, avoiding an allocation
// at call sites that only need one character.
func (s *Scanner) FindByte(b byte, from, to int) int {
	if to <= 0 || to > s.End {
		to = s.End
	}
	if from < 0 {
		from = s.Caret
	}
	if from > to {
		return -1
	}
	idx := strings.IndexByte(s.Text[from:to], b)
	if idx == -1 {
		return -1
	}
	return from + idx
}

// RFind returns the index of the last occurrence of sub in [from, to),
// or -1.
func (s *Scanner) RFind(sub string, from, to int) int {
	if to <= 0 || to > s.End {
		to = s.End
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		return -1
	}
	idx := strings.LastIndex(s.Text[from:to], sub)
	if idx == -1 {
		return -1
	}
	return from + idx
}

// MatchAt runs re anchored to the text starting at i (not the whole
// string) and returns the submatch slice as in regexp.FindStringSubmatch,
// or nil. Callers treat group 0 as relative to i.
func (s *Scanner) MatchAt(re *regexp.Regexp, i int) []string {
	if i < 0 || i > s.End {
		return nil
	}
	if loc := re.FindStringSubmatchIndex(s.Text[i:s.End]); loc == nil || loc[0] != 0 {
		return nil
	}
	return re.FindStringSubmatch(s.Text[i:s.End])
}

// MatchIndexAt is MatchAt but returning byte offsets relative to i, as
// regexp.FindStringSubmatchIndex does.
func (s *Scanner) MatchIndexAt(re *regexp.Regexp, i int) []int {
	if i < 0 || i > s.End {
		return nil
	}
	m := re.FindStringSubmatchIndex(s.Text[i:s.End])
	if m == nil || m[0] != 0 {
		return nil
	}
	return m
}

// Update moves the caret forward to i. Recognizers must never move the
// caret backward through Update; use Rewind for a deliberate retry from
// an earlier position within a single MakeNode/Close attempt.
func (s *Scanner) Update(i int) {
	if i < s.Caret {
		panic(&InternalError{Msg: "scanner: Update would move caret backward; use Rewind"})
	}
	if i > s.End {
		i = s.End
	}
	s.Caret = i
}

// Rewind resets the caret to i, which may be less than the current
// caret. It exists for recognizers that speculatively scan ahead and
// need to undo that scan before returning MakeResult{} (none).
func (s *Scanner) Rewind(i int) {
	if i < 0 {
		i = 0
	}
	if i > s.End {
		i = s.End
	}
	s.Caret = i
}

// Compute returns the (line, column) of absolute byte index i, both
// 1-indexed. Matches the teacher's own byte-counting simplification:
// it counts bytes, not decoded runes, as columns.
func (s *Scanner) Compute(i int) Position {
	if i > len(s.Text) {
		i = len(s.Text)
	}
	line, col := 1, 1
	for idx := 0; idx < i; idx++ {
		if s.Text[idx] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}

// Pos returns the position of the current caret.
func (s *Scanner) Pos() Position { return s.Compute(s.Caret) }

// SkipSpace advances the caret over any of chars (default " \t") and
// returns the new caret index. Grounded on original_source's
// EmptyNP.skip_space, used by several recognizers (headers, meta) to
// find where inline content begins on a line.
func (s *Scanner) SkipSpace(chars string) int {
	if chars == "" {
		chars = " \t"
	}
	i := s.Caret
	for i < s.End && strings.IndexByte(chars, s.Text[i]) >= 0 {
		i++
	}
	return i
}

// SkipSpaceAt is SkipSpace starting from an arbitrary index rather than
// the caret, leaving the caret untouched.
func (s *Scanner) SkipSpaceAt(i int, chars string) int {
	if chars == "" {
		chars = " \t"
	}
	for i < s.End && strings.IndexByte(chars, s.Text[i]) >= 0 {
		i++
	}
	return i
}

// LineEnd returns the index of the next '\n' at or after i, or End if
// the line is the last one in the document.
func (s *Scanner) LineEnd(i int) int {
	idx := s.FindByte('\n', i, s.End)
	if idx == -1 {
		return s.End
	}
	return idx
}

// AtLineStart reports whether i is the first byte of a line: either 0
// or immediately preceded by '\n'.
func (s *Scanner) AtLineStart(i int) bool {
	return i == 0 || (i > 0 && i <= s.End && s.Text[i-1] == '\n')
}
