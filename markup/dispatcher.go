package markup

import "github.com/LaudateCorpus1/lexor-parser-default/codesink"

// DispatchConfig carries the small set of run-time knobs recognizers
// consult: whether bare URIs/emails auto-link, the emphasis newline
// limit copied from Config (no recognizer reads it), and the
// injectable code sink used by recognizers that validate embedded
// source.
type DispatchConfig struct {
	AutoLink            bool
	MaxEmphasisNewlines int
	CodeSink            codesink.Sink
}

// frame is one entry of the dispatcher's open-node stack: the node
// itself, the recognizer that opened it (nil for the synthetic root),
// and that recognizer's private scratch state for this node.
type frame struct {
	node    Node
	rec     Recognizer
	scratch Scratch
}

// Dispatcher is the cursor-driven driver (C6): it owns the scanner,
// the diagnostic sink, the attribute parser and the open-node stack,
// and walks the context-trigger table to decide, character by
// character, which recognizer gets a chance to run.
//
// It plays two roles the Python original split across two objects:
// go-org's own top-level parse loop (Document.Parse), and the
// original_source `self.parser` object that every NodeParser method
// receives and uses for cross-recognizer calls. Here those
// cross-recognizer calls (e.g. a block recognizer borrowing the
// attribute grammar, or the meta recognizer borrowing the horizontal
// rule check) become ordinary Go method calls against the dispatcher
// or its AttrParser field instead of string-keyed registry lookups.
type Dispatcher struct {
	*Scanner
	Sink   *Sink
	Config DispatchConfig
	Attrs  *AttrParser

	stack    []*frame
	resolved map[string]*resolvedEntry
}

func containerName(n Node) string {
	switch v := n.(type) {
	case *Element:
		return v.Name
	case *Void:
		return v.Name
	case *RawText:
		return v.Name
	default:
		return "__default__"
	}
}

// Top returns the currently open node, i.e. the container new text and
// new nodes are appended into.
func (d *Dispatcher) Top() Node { return d.top().node }

func (d *Dispatcher) top() *frame { return d.stack[len(d.stack)-1] }

func (d *Dispatcher) pop() { d.stack = d.stack[:len(d.stack)-1] }

// push installs node (which must be an *Element; Void and RawText
// never go on the stack) as the new top, wiring it in as a child of
// the previous top first.
func (d *Dispatcher) push(node Node, rec Recognizer, scratch Scratch) {
	el, ok := node.(*Element)
	if !ok {
		panic(&InternalError{Msg: "dispatcher: only *Element nodes may be opened onto the stack"})
	}
	if scratch == nil {
		scratch = Scratch{}
	}
	d.appendChild(el)
	d.stack = append(d.stack, &frame{node: el, rec: rec, scratch: scratch})
}

func (d *Dispatcher) appendChild(n Node) {
	top, ok := d.top().node.(*Element)
	if !ok {
		panic(&InternalError{Msg: "dispatcher: current top of stack is not an *Element"})
	}
	top.AppendChild(n)
}

func (d *Dispatcher) appendChildren(list []Node) {
	for _, n := range list {
		d.appendChild(n)
	}
}

// appendText appends literal data spanning [from, to) as a child of
// the current top, merging into an existing trailing Text child when
// possible so adjacent runs emitted across several dispatch steps
// (e.g. accumulation, then a single stray character, then more
// accumulation) don't fragment into many small Text nodes.
func (d *Dispatcher) appendText(from, to int) {
	if from >= to {
		return
	}
	top, ok := d.top().node.(*Element)
	if !ok {
		panic(&InternalError{Msg: "dispatcher: current top of stack is not an *Element"})
	}
	data := d.Slice(from, to)
	if last, ok := top.LastChild().(*Text); ok {
		last.Data += data
		return
	}
	top.AppendChild(&Text{Data: data, Pos: d.Compute(from)})
}

// Run drives the dispatch loop described by the dispatch contract: at
// each step, accumulate trigger-free text, try to close the current
// top, then try each registered recognizer for the current context in
// order, falling back to single-character text emission when none
// apply. At end of input it closes anything still open (see
// closeAtEOF).
func (d *Dispatcher) Run() {
	for d.Caret < d.End {
		entry := lookup(d.resolved, containerName(d.top().node))

		start := d.Caret
		for d.Caret < d.End && !entry.isTrigger(d.Text[d.Caret]) {
			d.Caret++
		}
		if d.Caret > start {
			d.appendText(start, d.Caret)
		}
		if d.Caret >= d.End {
			break
		}

		if top := d.top(); top.rec != nil {
			before := d.Caret
			if pos, closed := top.rec.Close(top.node, d, top.scratch); closed {
				_ = pos
				d.pop()
				continue
			}
			if d.Caret != before {
				panic(&InternalError{Msg: "dispatcher: Close advanced the caret without closing the node"})
			}
		}

		matched := false
		for _, rec := range entry.recognizers {
			before := d.Caret
			res := rec.MakeNode(d)
			if res.IsNone() {
				if d.Caret != before {
					panic(&InternalError{Msg: "dispatcher: recognizer " + rec.Name() + " moved the caret but reported no match"})
				}
				continue
			}
			matched = true
			if res.Open != nil {
				d.push(res.Open, rec, res.Scratch)
			} else {
				d.appendChildren(res.List)
			}
			break
		}
		if !matched {
			d.appendText(d.Caret, d.Caret+1)
			d.Update(d.Caret + 1)
		}
	}
	d.closeAtEOF()
}

// closeAtEOF unwinds every node still open when input runs out. Each
// node's recognizer first gets one last Close attempt at end of input
// (a paragraph, for instance, ends cleanly there); a node whose
// recognizer still refuses is force-closed with a diagnostic: the
// document is still well formed (the open-node stack always unwinds to
// the synthetic root), but such an unclosed construct is almost always
// an authoring mistake worth surfacing.
func (d *Dispatcher) closeAtEOF() {
	for len(d.stack) > 1 {
		top := d.top()
		if _, closed := top.rec.Close(top.node, d, top.scratch); !closed {
			d.Sink.Record("dispatcher", "E900", top.node.Position(), containerName(top.node))
		}
		d.pop()
	}
}
