package markup

import "strings"

var voidElementNames = map[string]bool{
	"area": true, "base": true, "basefont": true, "br": true, "col": true,
	"frame": true, "hr": true, "img": true, "input": true, "isindex": true,
	"link": true, "meta": true, "param": true, "command": true,
	"embed": true, "keygen": true, "source": true, "track": true,
	"wbr": true, "include": true, "documentclass": true, "bibliography": true,
}

var rawTextElementNames = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
	"undef": true, "usepackage": true,
}

// autoClose maps an open element's name to the set of names that, when
// seen opening next, close it outright before opening themselves (the
// HTML "optional end tag" rule for `p` and `a`).
var autoClose = map[string][]string{
	"p": {
		"address", "article", "aside", "blockquote", "dir", "div",
		"dl", "fieldset", "footer", "form", "h1", "h2", "h3", "h4",
		"h5", "h6", "header", "hgroup", "hr", "main", "menu", "nav",
		"ol", "p", "pre", "section", "table", "ul",
	},
	"a": {"a"},
}

// autoCloseFirst is like autoClose but only applies before the element
// has accepted its first Element child (e.g. an `li` closes a sibling
// `li` immediately, but only until something real has been nested
// inside it).
var autoCloseFirst = map[string][]string{
	"li":       {"li"},
	"dt":       {"dt", "dd"},
	"dd":       {"dt", "dd"},
	"rt":       {"rt", "rp"},
	"rp":       {"rt", "rp"},
	"optgroup": {"optgroup"},
	"option":   {"optgroup", "option"},
	"thead":    {"tbody", "tfoot"},
	"tbody":    {"tbody", "tfoot"},
	"tfoot":    {"tbody"},
	"tr":       {"tr"},
	"td":       {"td", "th"},
	"th":       {"td", "th"},
}

// elementRecognizer recognizes HTML-derived tags, in both the angle
// bracket form (`<tag attrs>...</tag>`, `<tag attrs/>`) and the
// `%%{tag attrs}content%%` shortcut form, closed by a bare `%%`
// (the angle-bracket form closes on `</tag>`; these are simply two
// different terminators for the same open/close shape). Void and
// raw-text element names are a fixed table, same as HTML's, in both
// syntaxes: a shortcut name is void or raw-text by name membership
// alone, the same rule the angle-bracket form uses, not by any
// trailing marker in the attribute region (so `%%{h3 #sec3@}...%%` is
// a regular `h3` element whose attribute run happens to end in the
// `@`-pairing shortcut, not a self-closing tag).
//
// Grounded on original_source/default/element.py's ElementNP.
type elementRecognizer struct{}

// NewElementRecognizer returns the HTML-element recognizer.
func NewElementRecognizer() Recognizer { return elementRecognizer{} }

func (elementRecognizer) Name() string { return "ElementNP" }

func (r elementRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.StartsWith("%%{") {
		return r.makeShortcut(d)
	}
	if s.Cur() != '<' {
		return MakeResult{}
	}
	nxt := s.At(s.Caret + 1)
	if nxt == '/' || nxt == '!' || nxt == '?' || !isNameStart(nxt) {
		return MakeResult{}
	}
	pos := s.Pos()
	name, j := readTagName(s, s.Caret+1)
	tagClose := findTagClose(s, j)
	if tagClose == -1 {
		d.Sink.Record("ElementNP", "E100", pos, name)
		return MakeResult{}
	}
	selfClose := tagClose > j && s.Text[tagClose-1] == '/'
	attrEnd := tagClose
	if selfClose {
		attrEnd = tagClose - 1
	}
	lname := strings.ToLower(name)
	s.Rewind(j)

	switch {
	case selfClose || voidElementNames[lname]:
		node := &Void{Name: lname, AttrList: NewAttrList(), Pos: pos}
		d.Attrs.ReadAttributes(s, node, attrEnd, d.Sink, "ElementNP")
		d.Rewind(tagClose + 1)
		return MakeResult{List: []Node{node}}

	case rawTextElementNames[lname]:
		node := &RawText{Name: lname, AttrList: NewAttrList(), Pos: pos}
		d.Attrs.ReadAttributes(s, node, attrEnd, d.Sink, "ElementNP")
		d.Rewind(tagClose + 1)
		closeTag := "</" + lname
		endIdx := findFold(s, closeTag, d.Caret)
		if endIdx == -1 {
			d.Sink.Record("ElementNP", "E110", pos, lname)
			node.Data = s.Slice(d.Caret, s.End)
			d.Update(s.End)
			return MakeResult{List: []Node{node}}
		}
		node.Data = s.Slice(d.Caret, endIdx)
		after := s.FindByte('>', endIdx, s.End)
		if after == -1 {
			after = s.End
		} else {
			after++
		}
		d.Update(after)
		return MakeResult{List: []Node{node}}

	default:
		node := NewElement(lname, pos)
		d.Attrs.ReadAttributes(s, node, attrEnd, d.Sink, "ElementNP")
		d.Rewind(tagClose + 1)
		return MakeResult{Open: node}
	}
}

func (r elementRecognizer) makeShortcut(d *Dispatcher) MakeResult {
	s := d.Scanner
	pos := s.Pos()
	close := findMatchingBrace(s, s.Caret+3)
	if close == -1 {
		d.Sink.Record("ElementNP", "E120", pos)
		return MakeResult{}
	}
	body := s.Slice(s.Caret+3, close)
	i := 0
	for i < len(body) && isNameChar(body[i]) {
		i++
	}
	if i == 0 {
		d.Sink.Record("ElementNP", "E121", pos)
		return MakeResult{}
	}
	name := strings.ToLower(body[:i])
	sub := NewScanner(body, s.URI)
	sub.Rewind(i)

	switch {
	case voidElementNames[name]:
		node := &Void{Name: name, AttrList: NewAttrList(), Pos: pos}
		d.Attrs.ReadAttributes(sub, node, len(body), d.Sink, "ElementNP")
		d.Update(close + 1)
		return MakeResult{List: []Node{node}}

	case rawTextElementNames[name]:
		node := &RawText{Name: name, AttrList: NewAttrList(), Pos: pos}
		d.Attrs.ReadAttributes(sub, node, len(body), d.Sink, "ElementNP")
		d.Update(close + 1)
		endIdx := s.Find("%%", d.Caret, s.End)
		if endIdx == -1 {
			d.Sink.Record("ElementNP", "E110", pos, name)
			node.Data = s.Slice(d.Caret, s.End)
			d.Update(s.End)
			return MakeResult{List: []Node{node}}
		}
		node.Data = s.Slice(d.Caret, endIdx)
		d.Update(endIdx + 2)
		return MakeResult{List: []Node{node}}

	default:
		node := NewElement(name, pos)
		d.Attrs.ReadAttributes(sub, node, len(body), d.Sink, "ElementNP")
		d.Update(close + 1)
		return MakeResult{Open: node, Scratch: Scratch{"shortcut": true}}
	}
}

// Close matches this element's own terminator first (`</name>` for the
// angle-bracket form, a bare `%%` for the shortcut form, neither of
// which consume anything on a near-miss). Failing that, it looks ahead
// for the start of some other element opening right here: AUTO_CLOSE
// and AUTO_CLOSE_FIRST (the HTML "optional end tag" rules, e.g. a `p`
// closes as soon as a block-level sibling like `h1` starts, an `li`
// closes as soon as another `li` starts) let that upcoming open win
// without this element's own close syntax ever appearing, by closing
// here and leaving the caret untouched so the next dispatch step opens
// the new element fresh instead of nesting it.
//
// Grounded on original_source/default/element.py's is_done/close.
func (elementRecognizer) Close(node Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	el, ok := node.(*Element)
	if !ok {
		return Position{}, false
	}
	s := d.Scanner
	shortcut, _ := scratch["shortcut"].(bool)

	if shortcut {
		if s.StartsWith("%%") && !s.StartsWith("%%{") && !s.StartsWith("%%?") && !s.StartsWith("%%!") {
			pos := s.Pos()
			d.Update(s.Caret + 2)
			return pos, true
		}
	} else if s.StartsWith("</") {
		name, j := readTagName(s, s.Caret+2)
		if strings.EqualFold(name, el.Name) {
			if closeIdx := s.FindByte('>', j, s.End); closeIdx != -1 {
				pos := s.Pos()
				d.Update(closeIdx + 1)
				return pos, true
			}
		}
	}

	if tmptag, found := peekOpenTagName(s); found {
		if containsName(autoClose[el.Name], tmptag) {
			return s.Pos(), true
		}
		if !hasElementChild(el) && containsName(autoCloseFirst[el.Name], tmptag) {
			return s.Pos(), true
		}
	}
	return Position{}, false
}

// peekOpenTagName reports the lowercased tag name of an element that
// would open right at the scanner's current position, without
// consuming anything, checking both the angle-bracket and `%%{`
// shortcut forms.
func peekOpenTagName(s *Scanner) (string, bool) {
	if s.Cur() == '<' {
		nxt := s.At(s.Caret + 1)
		if nxt == '/' || nxt == '!' || nxt == '?' || !isNameStart(nxt) {
			return "", false
		}
		name, _ := readTagName(s, s.Caret+1)
		if name == "" {
			return "", false
		}
		return strings.ToLower(name), true
	}
	if s.StartsWith("%%{") {
		i := s.Caret + 3
		start := i
		for i < s.End && isNameChar(s.Text[i]) {
			i++
		}
		if i == start {
			return "", false
		}
		return strings.ToLower(s.Slice(start, i)), true
	}
	return "", false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func hasElementChild(el *Element) bool {
	for _, c := range el.Children {
		if _, ok := c.(*Element); ok {
			return true
		}
	}
	return false
}

func (elementRecognizer) Messages() map[string]string {
	return map[string]string{
		"E100": "tag {0} not properly closed with '>'",
		"E110": "raw text element {0} never closed",
		"E120": "%%{ shortcut not properly closed with '}'",
		"E121": "%%{ shortcut missing a tag name",
	}
}

func readTagName(s *Scanner, i int) (string, int) {
	start := i
	for i < s.End && isNameChar(s.Text[i]) {
		i++
	}
	return s.Slice(start, i), i
}

// findTagClose returns the index of the '>' ending a start tag,
// skipping over quoted attribute values so a '>' inside href="a>b"
// does not end the tag early. A literal '<' anywhere in the tag
// region, quoted or not, is always a malformed-tag signal (there is
// no escape for "less than" inside this grammar's attribute values)
// and aborts the search the same as never finding a '>' at all.
func findTagClose(s *Scanner, from int) int {
	var quote byte
	for i := from; i < s.End; i++ {
		c := s.Text[i]
		if c == '<' {
			return -1
		}
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}

// findMatchingBrace returns the index of the '}' that matches the '{'
// implicitly opened just before from, honoring nested braces.
func findMatchingBrace(s *Scanner, from int) int {
	depth := 1
	for i := from; i < s.End; i++ {
		switch s.Text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func findFold(s *Scanner, needle string, from int) int {
	lower := strings.ToLower(needle)
	text := strings.ToLower(s.Text[from:s.End])
	idx := strings.Index(text, lower)
	if idx == -1 {
		return -1
	}
	return from + idx
}
