package writer

import (
	"bytes"
	"fmt"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
	"golang.org/x/net/html"
)

// HTMLWriter renders a tree as HTML5 by building a golang.org/x/net/html
// node tree and delegating serialization (attribute quoting/escaping,
// void-element handling) to html.Render, rather than hand-rolling
// string escaping the way MarkupWriter does for the source language.
type HTMLWriter struct {
	buf  bytes.Buffer
	root *html.Node
}

// NewHTMLWriter returns a ready-to-use HTMLWriter.
func NewHTMLWriter() *HTMLWriter {
	return &HTMLWriter{root: &html.Node{Type: html.DocumentNode}}
}

func (w *HTMLWriter) Before(*markup.Document) {}

func (w *HTMLWriter) After(*markup.Document) {
	if err := html.Render(&w.buf, w.root); err != nil {
		fmt.Fprintf(&w.buf, "<!-- render error: %s -->", err)
	}
}

func (w *HTMLWriter) String() string { return w.buf.String() }

// WriteNodes appends the HTML equivalent of each of nodes as children
// of the document node.
func (w *HTMLWriter) WriteNodes(nodes ...markup.Node) {
	for _, n := range nodes {
		if c := w.toHTML(n); c != nil {
			w.root.AppendChild(c)
		}
	}
}

func (w *HTMLWriter) appendAll(parent *html.Node, nodes []markup.Node) {
	for _, n := range nodes {
		if c := w.toHTML(n); c != nil {
			parent.AppendChild(c)
		}
	}
}

func (w *HTMLWriter) toHTML(n markup.Node) *html.Node {
	switch v := n.(type) {
	case *markup.Text:
		return &html.Node{Type: html.TextNode, Data: v.Data}
	case *markup.Entity:
		return &html.Node{Type: html.TextNode, Data: v.Data}
	case *markup.Comment:
		return &html.Node{Type: html.CommentNode, Data: v.Data}
	case *markup.CData:
		return &html.Node{Type: html.TextNode, Data: v.Data}
	case *markup.DocumentType:
		return &html.Node{Type: html.DoctypeNode, Data: "html"}
	case *markup.ProcessingInstruction:
		return &html.Node{Type: html.CommentNode, Data: "?" + v.Target + " " + v.Data}
	case *markup.Void:
		return w.elementNode(v.Name, v.AttrList, nil)
	case *markup.RawText:
		el := w.elementNode(htmlTagFor(v.Name), v.AttrList, nil)
		el.AppendChild(&html.Node{Type: html.TextNode, Data: v.Data})
		return el
	case *markup.Element:
		if v.Name == markup.DocumentRootName {
			body := w.elementNode("body", markup.NewAttrList(), nil)
			w.appendAll(body, v.Children)
			html5 := w.elementNode("html", markup.NewAttrList(), nil)
			html5.AppendChild(w.elementNode("head", markup.NewAttrList(), nil))
			html5.AppendChild(body)
			return html5
		}
		el := w.elementNode(htmlTagFor(v.Name), v.AttrList, nil)
		w.appendAll(el, v.Children)
		return el
	}
	return nil
}

func (w *HTMLWriter) elementNode(tag string, attrs *markup.AttrList, _ []markup.Node) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: 0}
	for _, k := range attrs.Keys() {
		v, _ := attrs.Get(k)
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: v})
	}
	return el
}

// htmlTagFor maps this grammar's non-HTML construct names onto the
// HTML tag an author would expect to see in a browser; anything
// already HTML-shaped (an ElementNP tag name) passes through.
func htmlTagFor(name string) string {
	switch name {
	case "list":
		return "ul"
	case "list_item":
		return "li"
	case "latex", "latex-display":
		return "span"
	case "eval":
		return "pre"
	case "macro":
		return "span"
	default:
		return name
	}
}
