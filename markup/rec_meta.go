package markup

import (
	"regexp"
	"strings"
)

var metaRegexp = regexp.MustCompile(`^([ ]{0,3})([A-Za-z0-9_-]+)(:\s*)(.*)$`)
var metaMoreRegexp = regexp.MustCompile(`^([ ]{4,})(.*)$`)

// metaRecognizer recognizes the optional `key: value` metadata block
// that may only begin at the very first byte of a document. The block
// ends at the first blank line or the first horizontal rule,
// whichever comes first; either terminator is consumed but not itself
// represented in the resulting tree. A single leading horizontal rule
// with no metadata lines after it is returned on its own.
//
// Grounded on original_source/default/meta.py's MetaNP, including its
// particular choice to discard rather than emit the terminating rule.
type metaRecognizer struct{}

// NewMetaRecognizer returns the document-metadata recognizer.
func NewMetaRecognizer() Recognizer { return metaRecognizer{} }

func (metaRecognizer) Name() string { return "MetaNP" }

func (r metaRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.Caret != 0 {
		return MakeResult{}
	}
	pos := s.Pos()
	delimiter, _ := TryHorizontalRule(d)

	entry := r.getEntry(d, false)
	if entry == nil {
		if delimiter != nil {
			return MakeResult{List: []Node{delimiter}}
		}
		return MakeResult{}
	}
	node := NewElement("lexor-meta", pos)
	for entry != nil {
		node.AppendChild(entry)
		entry = r.getEntry(d, true)
	}
	return MakeResult{List: []Node{node}}
}

func (metaRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (metaRecognizer) Messages() map[string]string {
	return map[string]string{
		"E100": "meta block not properly finished",
		"E101": "indentation of {0} spaces not enough for meta value",
	}
}

func (r metaRecognizer) getEntry(d *Dispatcher, warn bool) Node {
	s := d.Scanner
	idx := s.FindByte('\n', d.Caret, s.End)
	if idx == -1 {
		return nil
	}
	line := strings.TrimSpace(s.Slice(d.Caret, idx))
	if line == "" {
		return nil
	}
	m := metaRegexp.FindStringSubmatch(line)
	if m == nil {
		if _, ok := TryHorizontalRule(d); !ok && warn {
			d.Sink.Record("MetaNP", "E100", s.Pos())
		}
		return nil
	}
	pos := s.Pos()
	key := strings.ToLower(strings.TrimSpace(m[2]))
	value := strings.TrimSpace(m[4])
	node := NewElement("entry", pos)
	node.AttrList.Set("name", key)
	blank := len(m[1]) + len(m[2]) + len(m[3])
	valNode := &RawText{Name: "item", Data: value, AttrList: NewAttrList(), Pos: s.Compute(d.Caret + blank)}
	node.AppendChild(valNode)
	d.Update(idx + 1)

	for {
		idx = s.FindByte('\n', d.Caret, s.End)
		if idx == -1 {
			return node
		}
		raw := s.Slice(d.Caret, idx)
		mm := metaMoreRegexp.FindStringSubmatch(raw)
		if mm == nil {
			count := 0
			for count < len(raw) && raw[count] == ' ' {
				count++
			}
			if count > 0 {
				d.Sink.Record("MetaNP", "E101", s.Pos(), count)
			}
			return node
		}
		value := strings.TrimSpace(mm[2])
		blank := len(mm[1])
		valNode := &RawText{Name: "item", Data: value, AttrList: NewAttrList(), Pos: s.Compute(d.Caret + blank)}
		node.AppendChild(valNode)
		d.Update(idx + 1)
	}
}
