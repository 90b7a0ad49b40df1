package markup

import "strings"

// AttrParser implements the shared attribute sub-grammar (C7): a run
// of key="value" pairs and shortcut tokens (#id, .class, [ref]),
// shared by every recognizer whose node carries attributes
// (elements, headers, references, list items, ...).
//
// Grounded on original_source/default/element.py's read_attributes /
// read_prop / read_val / prop_shortcut / handle_id_ref: one routine,
// reused by every recognizer, rather than each recognizer growing its
// own attribute-reading logic.
type AttrParser struct{}

// NewAttrParser returns a ready-to-use attribute parser. It carries no
// state between calls; all of it lives in the Scanner and the target
// node passed in.
func NewAttrParser() *AttrParser { return &AttrParser{} }

// ReadAttributes consumes attribute tokens from the scanner starting
// at its current caret, writing them into target, stopping at end or
// at the first byte it cannot interpret as an attribute token. It
// returns the index just past the last token consumed; it does not
// itself move the scanner's caret, leaving that to the caller (some
// callers need to read attributes speculatively without committing).
func (p *AttrParser) ReadAttributes(s *Scanner, target AttributeTarget, end int, sink *Sink, module string) int {
	i := s.Caret
	for i < end {
		i = s.SkipSpaceAt(i, " \t")
		if i >= end {
			break
		}
		c := s.Text[i]
		switch {
		case c == '#':
			j, id := p.readToken(s, i+1, end)
			if id == "" {
				if sink != nil {
					sink.Record(module, "E170", s.Compute(i))
				}
				return i
			}
			target.Attrs().Set("id", id)
			i = j
			if i < end && s.Text[i] == '@' {
				target.Attrs().Set("_pyref", id)
				i++
			}
		case c == '.':
			j, cls := p.readToken(s, i+1, end)
			if cls == "" {
				return i
			}
			target.Attrs().AppendValue("class", " ", cls)
			i = j
		case c == '@':
			j, name := p.readToken(s, i+1, end)
			if name == "" {
				if sink != nil {
					sink.Record(module, "E171", s.Compute(i))
				}
				return i
			}
			target.Attrs().Set("_pyref", name)
			i = j
			if i < end && s.Text[i] == '#' {
				target.Attrs().Set("id", name)
				i++
			}
		case c == '[':
			close := s.FindByte(']', i+1, end)
			if close == -1 {
				if sink != nil {
					sink.Record(module, "E170", s.Compute(i))
				}
				return i
			}
			ref := strings.ToLower(strings.TrimSpace(s.Slice(i+1, close)))
			target.AddALRef(s.Compute(i), ref)
			i = close + 1
		case isNameStart(c):
			var key string
			i, key = p.readToken(s, i, end)
			j := s.SkipSpaceAt(i, " \t")
			if j < end && s.Text[j] == '=' {
				j = s.SkipSpaceAt(j+1, " \t")
				var val string
				j, val = p.readVal(s, j, end)
				target.Attrs().Set(strings.ToLower(key), val)
				i = j
			} else {
				target.Attrs().Set(strings.ToLower(key), "")
			}
		default:
			return i
		}
	}
	return i
}

// GetAttributeList reads an attribute run found between open and
// close (both absolute indices, typically the inside of a trailing
// `{ ... }` block found ahead of the node's own content), leaving the
// scanner positioned at close when done. Grounded on header.go's and
// element.py's reuse of get_attribute_list both for attributes
// immediately following a tag name and for a deferred trailing block.
func (p *AttrParser) GetAttributeList(s *Scanner, target AttributeTarget, open, close int, sink *Sink, module string) {
	s.Rewind(open)
	p.ReadAttributes(s, target, close, sink, module)
	s.Rewind(close)
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func (p *AttrParser) readToken(s *Scanner, i, end int) (int, string) {
	start := i
	for i < end && isNameChar(s.Text[i]) {
		i++
	}
	return i, s.Slice(start, i)
}

func (p *AttrParser) readVal(s *Scanner, i, end int) (int, string) {
	if i < end && (s.Text[i] == '"' || s.Text[i] == '\'') {
		quote := s.Text[i]
		close := s.FindByte(quote, i+1, end)
		if close == -1 {
			return end, s.Slice(i+1, end)
		}
		return close + 1, s.Slice(i+1, close)
	}
	start := i
	for i < end && s.Text[i] != ' ' && s.Text[i] != '\t' && s.Text[i] != '\n' {
		i++
	}
	return i, s.Slice(start, i)
}
