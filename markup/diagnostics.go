package markup

import "fmt"

// Diagnostic is one recognizer-reported condition: not an error in the
// Go sense, a data record. Grounded on org/error.go's ParseError, which
// the teacher also models as a plain struct appended to a slice rather
// than something thrown and caught.
type Diagnostic struct {
	Module string
	Code   string
	Pos    Position
	Args   []any
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s at %s", d.Module, d.Code, d.Pos)
}

// Sink collects diagnostics in the order recognizers report them,
// which is document order by construction (the dispatcher only ever
// moves the caret forward between reports).
type Sink struct {
	entries []Diagnostic
}

// Record appends one diagnostic.
func (s *Sink) Record(module, code string, pos Position, args ...any) {
	s.entries = append(s.entries, Diagnostic{Module: module, Code: code, Pos: pos, Args: args})
}

// Entries returns a copy of the diagnostics recorded so far, in order.
func (s *Sink) Entries() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many diagnostics have been recorded.
func (s *Sink) Len() int { return len(s.entries) }
