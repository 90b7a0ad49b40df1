package markup

import "regexp"

var schemeBackRegexp = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*$`)
var urlRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://[^\s<>]+`)
var localPartBackRegexp = regexp.MustCompile(`[\w.+-]+$`)
var domainForwardRegexp = regexp.MustCompile(`^[\w-]+(\.[\w-]+)+`)

// autoLinkRecognizer and autoMailRecognizer both trigger on a
// character that appears only inside the construct they detect (':'
// for a scheme separator, '@' for an address), after the preceding
// run has already been swept into a plain Text child by the
// dispatcher's own accumulation loop. Both therefore look backward
// into the already-produced Text to find where their construct began,
// trim that many trailing bytes back out of it, and replace the
// trimmed span with a link node — the same trim-the-last-text-node
// technique the teacher's inline.go regexp table relies on for
// left-flanking emphasis delimiters.
//
// Grounded on original_source/default/auto.py's AutoLinkNP/AutoMailNP.
// Both are only tried when Config.AutoLink is set.
type autoLinkRecognizer struct{}

// NewAutoLinkRecognizer returns the bare-URI auto-link recognizer.
func NewAutoLinkRecognizer() Recognizer { return autoLinkRecognizer{} }

func (autoLinkRecognizer) Name() string { return "AutoLinkNP" }

func (autoLinkRecognizer) MakeNode(d *Dispatcher) MakeResult {
	if !d.Config.AutoLink {
		return MakeResult{}
	}
	s := d.Scanner
	if s.Cur() != ':' {
		return MakeResult{}
	}
	loc := schemeBackRegexp.FindStringIndex(s.Slice(0, s.Caret))
	if loc == nil {
		return MakeResult{}
	}
	start := loc[0]
	m := urlRegexp.FindString(s.Slice(start, s.End))
	if m == "" {
		return MakeResult{}
	}
	pos := s.Compute(start)
	trimTrailingText(d, s.Caret-start)
	node := NewElement("a", pos)
	node.AttrList.Set("href", m)
	node.AppendChild(&Text{Data: m, Pos: pos})
	d.Update(start + len(m))
	return MakeResult{List: []Node{node}}
}

func (autoLinkRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (autoLinkRecognizer) Messages() map[string]string { return nil }

// autoMailRecognizer recognizes a bare `user@host.tld` address.
type autoMailRecognizer struct{}

// NewAutoMailRecognizer returns the bare-email auto-link recognizer.
func NewAutoMailRecognizer() Recognizer { return autoMailRecognizer{} }

func (autoMailRecognizer) Name() string { return "AutoMailNP" }

func (autoMailRecognizer) MakeNode(d *Dispatcher) MakeResult {
	if !d.Config.AutoLink {
		return MakeResult{}
	}
	s := d.Scanner
	if s.Cur() != '@' {
		return MakeResult{}
	}
	loc := localPartBackRegexp.FindStringIndex(s.Slice(0, s.Caret))
	if loc == nil {
		return MakeResult{}
	}
	start := loc[0]
	domain := domainForwardRegexp.FindString(s.Slice(s.Caret+1, s.End))
	if domain == "" {
		return MakeResult{}
	}
	address := s.Slice(start, s.Caret+1+len(domain))
	pos := s.Compute(start)
	trimTrailingText(d, s.Caret-start)
	node := NewElement("a", pos)
	node.AttrList.Set("href", "mailto:"+address)
	node.AppendChild(&Text{Data: address, Pos: pos})
	d.Update(s.Caret + 1 + len(domain))
	return MakeResult{List: []Node{node}}
}

func (autoMailRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (autoMailRecognizer) Messages() map[string]string { return nil }

// trimTrailingText removes the last n bytes from the current top
// element's trailing Text child, dropping the child entirely if it
// becomes empty. A no-op if the trailing child isn't Text.
func trimTrailingText(d *Dispatcher, n int) {
	if n <= 0 {
		return
	}
	top, ok := d.Top().(*Element)
	if !ok {
		return
	}
	last, ok := top.LastChild().(*Text)
	if !ok {
		return
	}
	if n > len(last.Data) {
		n = len(last.Data)
	}
	last.Data = last.Data[:len(last.Data)-n]
	if last.Data == "" {
		top.Children = top.Children[:len(top.Children)-1]
	}
}
