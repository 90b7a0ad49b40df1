// Package writer serializes a parsed document tree (markup.Document)
// back into text. It implements the writer module the parser itself
// does not: a Writer reads a tree; it never re-enters the dispatcher.
package writer

import "github.com/LaudateCorpus1/lexor-parser-default/markup"

// Writer is the export interface a caller implements to turn a parsed
// tree into another format, the same shape as the teacher's own
// Before/WriteNodes/After/String cycle: Before and After bracket the
// whole document (e.g. to emit a <html> wrapper), WriteNodes is called
// once per sibling run, and String returns the accumulated output.
type Writer interface {
	Before(doc *markup.Document)
	WriteNodes(nodes ...markup.Node)
	After(doc *markup.Document)
	String() string
}

// Write runs w over doc's tree and returns the accumulated output.
// Diagnostics recorded during parsing do not prevent writing: a
// document with unclosed constructs still produces a best-effort tree,
// and it is the caller's choice whether doc.Diagnostics should block
// export.
func Write(doc *markup.Document, w Writer) string {
	w.Before(doc)
	w.WriteNodes(doc.Root.Children...)
	w.After(doc)
	return w.String()
}

// voidNodeNames lists common HTML void element Names, a subset of the
// parser's own void table (see markup's ElementNP). Neither writer in
// this package consults it: each decides from the node kind (*Void vs.
// *Element) whether a closing tag is written.
var voidNodeNames = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true,
	"link": true, "area": true, "base": true, "col": true, "embed": true,
	"source": true, "track": true, "wbr": true, "param": true,
}

// blockNodeNames are element Names a MarkupWriter gives their own
// line rather than folding onto the line of their siblings.
var blockNodeNames = map[string]bool{
	markup.DocumentRootName: true,
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"list": true, "list_item": true, "blockquote": true, "div": true,
	"table": true, "tr": true, "td": true, "th": true,
}
