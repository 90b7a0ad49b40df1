// Package codesink implements the injectable code-sink capability: a
// swappable "attempt to compile this embedded snippet" hook that the
// eval/code recognizers call out to, so embedded-code validation can
// be turned off entirely (NoopSink) or wired to a real front end
// without the core parser knowing which.
package codesink

// Finding is one problem reported while attempting to compile source.
type Finding struct {
	Line    int
	Column  int
	Message string
}

// Sink attempts to compile or syntax-check an embedded snippet and
// reports what it found. Implementations are expected to perform a
// cheap best-effort check (parse, not link/run), not a full build.
type Sink interface {
	// Name identifies the sink for diagnostics, e.g. "go" or "noop".
	Name() string

	// Compile attempts to parse source written at uri (used only for
	// error messages) under mode, a recognizer-chosen hint such as
	// "file" or "stmt-list". It returns any findings; nil/empty means
	// the snippet was accepted.
	Compile(uri, mode, source string) []Finding
}

// NoopSink accepts every snippet without inspection. It is the default
// when no code sink has been configured.
type NoopSink struct{}

// Name implements Sink.
func (NoopSink) Name() string { return "noop" }

// Compile implements Sink by accepting unconditionally.
func (NoopSink) Compile(string, string, string) []Finding { return nil }
