// Package markup implements a single-pass, cursor-driven parser for a
// hybrid Markdown/LaTeX/HTML-like markup language: a dispatcher walks
// the source text once, consulting a context-sensitive table of
// pluggable node recognizers, and produces a typed document tree plus
// an ordered diagnostic log.
package markup

import "github.com/LaudateCorpus1/lexor-parser-default/codesink"

// Config is the set of knobs Parse accepts, grounded on org/document.go's
// Configuration: a small, explicit struct rather than functional
// options, matching the teacher's own style.
type Config struct {
	// URI names the document for diagnostics; it has no effect on
	// parsing itself.
	URI string

	// Mapping is the resolved context-trigger table (C5): which
	// recognizers apply inside which containing element, and on which
	// trigger bytes. Callers typically get one from the style package
	// rather than building it by hand.
	Mapping Mapping

	// AutoLink enables bare-URI/email auto-linking in inline text.
	AutoLink bool

	// MaxEmphasisNewlines is carried into the dispatcher's
	// DispatchConfig, but no recognizer reads it: emphasis spans are
	// not limited by how many blank lines they cross.
	MaxEmphasisNewlines int

	// CodeSink validates embedded code snippets (eval blocks, fenced
	// code with a recognized language hint). Defaults to a no-op.
	CodeSink codesink.Sink
}

// DefaultConfig returns a Config with sensible non-Mapping defaults.
// Callers must still set Mapping (see the style package's Default).
func DefaultConfig() *Config {
	return &Config{
		AutoLink:            true,
		MaxEmphasisNewlines: 1,
		CodeSink:            codesink.NoopSink{},
	}
}

// Document is the result of a successful Parse: the root node of the
// produced tree and every diagnostic recorded along the way, in
// document order. Grounded on org/document.go's Document, which
// likewise pairs a parsed tree with an accumulated error list rather
// than failing parsing outright on the first problem.
type Document struct {
	Root        *Element
	Diagnostics []Diagnostic
}

// Parse runs the dispatcher over text once and returns the resulting
// document. It returns a non-nil error only for a malformed Mapping
// (a missing mandatory context or an alias cycle, detected once before
// any parsing begins); problems found in the text itself are reported
// as Diagnostics on the returned Document, never as a Go error.
func Parse(text string, cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	resolved, err := cfg.Mapping.resolve()
	if err != nil {
		return nil, err
	}

	scanner := NewScanner(text, cfg.URI)
	sink := &Sink{}
	root := NewElement(DocumentRootName, Position{Line: 1, Column: 1})

	d := &Dispatcher{
		Scanner: scanner,
		Sink:    sink,
		Config: DispatchConfig{
			AutoLink:            cfg.AutoLink,
			MaxEmphasisNewlines: cfg.MaxEmphasisNewlines,
			CodeSink:            cfg.CodeSink,
		},
		Attrs:    NewAttrParser(),
		resolved: resolved,
		stack:    nil,
	}
	d.stack = []*frame{{node: root, rec: nil, scratch: nil}}
	d.Run()

	return &Document{Root: root, Diagnostics: sink.Entries()}, nil
}
