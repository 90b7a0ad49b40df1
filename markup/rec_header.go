package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var setextRegexp = regexp.MustCompile(`(?m)^.*?\n[=-]+[ \t]*(\n|$)`)

// atxHeaderRecognizer and setextHeaderRecognizer both defer the
// question of "did a trailing `{...}` attribute block follow the
// heading text" to Close, since that block can only be found once the
// line's full extent is known. Both stash the same four scratch
// fields while open: contentEnd (where the heading text itself stops,
// before any trailing attribute block or stray hashes), att (whether
// a trailing block was found), leftB (its opening brace, if att),
// finalPos (where to resume scanning once the heading is fully
// consumed).
//
// Grounded verbatim on original_source/default/header.py's AtxHeaderNP
// and SetextHeaderNP, which share this same scratch shape.
type atxHeaderRecognizer struct{}

// NewAtxHeaderRecognizer returns the `#`-style header recognizer.
func NewAtxHeaderRecognizer() Recognizer { return atxHeaderRecognizer{} }

func (atxHeaderRecognizer) Name() string { return "AtxHeaderNP" }

func (r atxHeaderRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if s.Cur() != '#' || !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	pos := s.Pos()
	index := s.Caret + 1
	level := 1
	for s.At(index) == '#' {
		index++
		level++
		if level == 6 {
			break
		}
	}
	node := NewElement(fmt.Sprintf("h%d", level), pos)
	d.Rewind(index)
	// An attribute block immediately following the hashes must be a
	// literal `{...}`; anything else at this position is heading text,
	// not attributes, matching element.py's get_attribute_list guard
	// (it declines outright unless the current character is `{`).
	if s.Cur() == '{' {
		if closeB := s.FindByte('}', index+1, s.End); closeB != -1 {
			d.Attrs.GetAttributeList(s, node, index+1, closeB, d.Sink, "AtxHeaderNP")
			d.Rewind(closeB + 1)
		}
	}

	contentStart := s.SkipSpaceAt(d.Caret, " \t")
	lineIdx := s.FindByte('\n', contentStart, s.End)
	if lineIdx == -1 {
		lineIdx = s.End
	}
	finalPos := lineIdx + 1
	if finalPos > s.End {
		finalPos = s.End
	}

	att := false
	leftB := -1
	contentEnd := lineIdx
	rightB := s.RFind("}", contentStart, lineIdx)
	if rightB != -1 && strings.TrimSpace(s.Slice(rightB+1, lineIdx)) == "" {
		lb := s.RFind("{", d.Caret, rightB)
		if lb != -1 {
			ch := s.At(lb - 1)
			if ch == ' ' || ch == '\t' || ch == '#' {
				att = true
				leftB = lb
			}
		}
	}
	if att {
		contentEnd = leftB
	}
	k := contentEnd - 1
	for k >= 0 && (s.At(k) == ' ' || s.At(k) == '\t') {
		k--
	}
	for k >= 0 && s.At(k) == '#' {
		k--
	}
	if s.At(k+1) == '#' {
		contentEnd = k + 1
	}

	d.Rewind(contentStart)
	return MakeResult{Open: node, Scratch: Scratch{
		"content_end": contentEnd,
		"att":         att,
		"left_b":      leftB,
		"final_pos":   finalPos,
	}}
}

func (r atxHeaderRecognizer) Close(node Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	return closeHeaderScratch(node.(*Element), d, scratch, "AtxHeaderNP")
}

func (atxHeaderRecognizer) Messages() map[string]string { return nil }

// setextHeaderRecognizer recognizes a two-line "underlined" header:
// a non-blank line immediately followed by a line of only '=' (h1) or
// '-' (h2) characters.
type setextHeaderRecognizer struct{}

// NewSetextHeaderRecognizer returns the underline-style header recognizer.
func NewSetextHeaderRecognizer() Recognizer { return setextHeaderRecognizer{} }

func (setextHeaderRecognizer) Name() string { return "SetextHeaderNP" }

func (r setextHeaderRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	m := s.MatchIndexAt(setextRegexp, s.Caret)
	if m == nil {
		return MakeResult{}
	}
	pos := s.Pos()
	lineIdx := s.FindByte('\n', s.Caret, s.End)
	if lineIdx == -1 {
		return MakeResult{}
	}
	level := 1
	if s.At(lineIdx+1) == '-' {
		level = 2
	}
	node := NewElement(fmt.Sprintf("h%d", level), pos)

	contentStart := s.SkipSpaceAt(s.Caret, " \t")
	finalPos := s.Caret + m[1]
	att := false
	leftB := -1
	contentEnd := lineIdx
	rightB := s.RFind("}", contentStart, lineIdx)
	if rightB != -1 && strings.TrimSpace(s.Slice(rightB+1, lineIdx)) == "" {
		lb := s.RFind("{", s.Caret, rightB)
		if lb != -1 && (s.At(lb-1) == ' ' || s.At(lb-1) == '\t') {
			att = true
			leftB = lb
		}
	}
	if att {
		contentEnd = leftB
	}
	return MakeResult{Open: node, Scratch: Scratch{
		"content_end": contentEnd,
		"att":         att,
		"left_b":      leftB,
		"final_pos":   finalPos,
	}}
}

func (r setextHeaderRecognizer) Close(node Node, d *Dispatcher, scratch Scratch) (Position, bool) {
	return closeHeaderScratch(node.(*Element), d, scratch, "SetextHeaderNP")
}

func (setextHeaderRecognizer) Messages() map[string]string { return nil }

func closeHeaderScratch(el *Element, d *Dispatcher, scratch Scratch, module string) (Position, bool) {
	s := d.Scanner
	contentEnd := scratch["content_end"].(int)
	if s.Caret != contentEnd {
		return Position{}, false
	}
	pos := s.Pos()
	if scratch["att"].(bool) {
		leftB := scratch["left_b"].(int)
		closeB := s.FindByte('}', leftB+1, s.End)
		if closeB != -1 {
			d.Attrs.GetAttributeList(s, el, leftB+1, closeB, d.Sink, module)
		}
	}
	finalPos := scratch["final_pos"].(int)
	d.Rewind(finalPos)
	// A second attribute block, right after the newline that ends the
	// heading's own line, is also merged in here if present.
	if s.Cur() == '{' {
		if closeB := s.FindByte('}', finalPos+1, s.End); closeB != -1 {
			d.Attrs.GetAttributeList(s, el, finalPos+1, closeB, d.Sink, module)
			d.Rewind(closeB + 1)
		}
	}
	return pos, true
}
