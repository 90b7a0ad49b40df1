package markup

// listRecognizer opens the `list` container the first time a list
// marker line is seen. It never itself consumes the marker: it only
// confirms one exists, pushes an empty `list` element, and lets the
// dispatcher re-resolve context to "list" so listItemRecognizer (only
// registered there) does the actual consuming. This keeps marker
// parsing in exactly one place instead of duplicating it between
// "open the list" and "open an item".
//
// Grounded on original_source/default/list.py's ListNP, generalized
// into the list/list-item split the way org/list.go (the teacher)
// also keeps a running notion of "the currently open list" separate
// from each item's own parsing.
type listRecognizer struct{}

// NewListRecognizer returns the list-container recognizer.
func NewListRecognizer() Recognizer { return listRecognizer{} }

func (listRecognizer) Name() string { return "ListNP" }

func (listRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	indent, kind, ok := parseListMarker(s, s.Caret)
	if !ok {
		return MakeResult{}
	}
	pos := s.Pos()
	node := NewElement("list", pos)
	node.AttrList.Set("type", kind)
	return MakeResult{Open: node, Scratch: Scratch{"indent": indent, "kind": kind}}
}

func (listRecognizer) Close(_ Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	s := d.Scanner
	indent := scratch["indent"].(int)
	kind := scratch["kind"].(string)
	if s.AtLineStart(s.Caret) {
		if ind2, kind2, ok := parseListMarker(s, s.Caret); ok && ind2 == indent && kind2 == kind {
			return Position{}, false
		}
	}
	return s.Pos(), true
}

func (listRecognizer) Messages() map[string]string { return nil }

// listItemRecognizer consumes one marker and the item body that
// follows it, registered only inside the "list" context. An item
// stays open across continuation lines indented further than its own
// marker and closes at the first line that dedents to the marker's
// own indentation or shallower (a sibling marker, or the end of the
// list entirely).
type listItemRecognizer struct{}

// NewListItemRecognizer returns the list-item recognizer.
func NewListItemRecognizer() Recognizer { return listItemRecognizer{} }

func (listItemRecognizer) Name() string { return "ListItemNP" }

func (listItemRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	indent, kind, ok := parseListMarker(s, s.Caret)
	if !ok {
		return MakeResult{}
	}
	markerStart := s.Caret + indent
	markerEnd := markerStart + markerLen(s, markerStart, kind)
	contentStart := s.SkipSpaceAt(markerEnd, " \t")
	pos := s.Pos()
	node := NewElement("list_item", pos)
	d.Rewind(contentStart)
	return MakeResult{Open: node, Scratch: Scratch{"indent": indent}}
}

func (listItemRecognizer) Close(_ Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	s := d.Scanner
	if s.Cur() != '\n' {
		return Position{}, false
	}
	indent := scratch["indent"].(int)
	next := s.Caret + 1
	if next < s.End {
		contIndent := 0
		for s.At(next+contIndent) == ' ' {
			contIndent++
		}
		if contIndent > indent && s.At(next+contIndent) != '\n' {
			return Position{}, false
		}
	}
	pos := s.Pos()
	d.Update(next)
	return pos, true
}

func (listItemRecognizer) Messages() map[string]string { return nil }

func parseListMarker(s *Scanner, lineStart int) (indent int, kind string, ok bool) {
	i := lineStart
	for s.At(i) == ' ' {
		i++
	}
	indent = i - lineStart
	if indent > 3 {
		return 0, "", false
	}
	switch s.At(i) {
	case '*', '+':
		if s.At(i+1) == ' ' || s.At(i+1) == '\t' {
			return indent, "ul", true
		}
		return 0, "", false
	case '^':
		if s.At(i+1) == '*' || s.At(i+1) == '+' {
			return indent, "dl", true
		}
		return 0, "", false
	}
	j := i
	for s.At(j) >= '0' && s.At(j) <= '9' {
		j++
	}
	if j > i && (s.At(j) == '.' || s.At(j) == ')') && (s.At(j+1) == ' ' || s.At(j+1) == '\t') {
		return indent, "ol", true
	}
	return 0, "", false
}

func markerLen(s *Scanner, i int, kind string) int {
	switch kind {
	case "dl":
		return 2
	case "ol":
		j := i
		for s.At(j) >= '0' && s.At(j) <= '9' {
			j++
		}
		return j - i + 1
	default:
		return 1
	}
}
