package markup

// MakeResult is the outcome of a recognizer's MakeNode attempt.
//
//   - zero value (both fields nil): the recognizer does not apply at
//     the current caret; the caret MUST be unchanged (the dispatcher
//     panics with an InternalError if it isn't — this is invariant
//     "recognizer idempotence" from the dispatch contract).
//   - Open non-nil: a single node was opened and must be pushed onto
//     the open-node stack; Close will be tried against it on future
//     passes through this context.
//   - List non-nil: one or more self-contained, already-closed nodes
//     were produced and must be appended as children of the current
//     top-of-stack node without pushing anything.
type MakeResult struct {
	Open Node
	List []Node

	// Scratch, when Open is non-nil, seeds the stack frame's scratch
	// state the recognizer's own Close will later receive. Recognizers
	// that need no state between MakeNode and Close may leave this nil;
	// the dispatcher supplies an empty map in that case.
	Scratch Scratch
}

// IsNone reports whether the recognizer declined to match.
func (r MakeResult) IsNone() bool { return r.Open == nil && r.List == nil }

// Scratch is a recognizer's private working state for a single open
// node, owned by the dispatcher's stack frame rather than the node
// itself. Keeping scratch off of Node is what gives this parser the
// "scratch cleanliness" invariant for free: a finished Node can never
// carry leftover bookkeeping fields because there is nowhere on Node
// to put them.
type Scratch map[string]any

// Recognizer is the contract every pluggable node recognizer (C8)
// implements. A Recognizer is stateless between calls; all per-node
// state lives in the Scratch the dispatcher hands back on Close.
type Recognizer interface {
	// Name identifies the recognizer for diagnostics and for the
	// context-trigger table.
	Name() string

	// MakeNode attempts to recognize a construct starting at the
	// dispatcher's current caret. On success it advances the caret
	// past whatever it consumed and returns a non-none MakeResult. On
	// failure it returns the zero MakeResult and MUST NOT move the
	// caret.
	MakeNode(d *Dispatcher) MakeResult

	// Close is only invoked for nodes this recognizer opened (via
	// MakeResult.Open). It reports whether the node closes at the
	// dispatcher's current caret; if so it returns the node's final
	// position and must leave the caret just past the node's closing
	// delimiter. If the node does not close yet, it returns
	// (Position{}, false) and MUST NOT move the caret.
	Close(node Node, d *Dispatcher, scratch Scratch) (Position, bool)

	// Messages returns this recognizer's diagnostic code -> human
	// readable description table, used by documentation/CLI tooling;
	// it carries no runtime behavior.
	Messages() map[string]string
}
