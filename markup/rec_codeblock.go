package markup

import (
	"fmt"
	"strings"
)

// fencedCodeRecognizer recognizes a fenced code block: a line of three
// or more '~' characters, optionally followed by a language hint, and
// a matching closing fence of at least the same length on its own
// line. When a code sink is configured and the language hint names a
// language it understands, the block's content is run through it and
// any findings are reported as diagnostics; an unrecognized or absent
// hint is not an error, it simply skips validation.
//
// This pairing (fenced + indented code blocks) has no surviving
// original_source file — only the inline-code variant of code.py
// survived distillation — so it is built from the document's prose
// description directly, as a self-contained recognizer that consumes
// the whole block in MakeNode (no open node, no scratch, no Close),
// rather than ported from a specific Python file. See DESIGN.md's Open
// Questions section.
type fencedCodeRecognizer struct{}

// NewFencedCodeRecognizer returns the fenced-code-block recognizer.
func NewFencedCodeRecognizer() Recognizer { return fencedCodeRecognizer{} }

func (fencedCodeRecognizer) Name() string { return "FencedCodeNP" }

func (r fencedCodeRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	fenceLen := countRun(s, s.Caret, '~')
	if fenceLen < 3 {
		return MakeResult{}
	}
	pos := s.Pos()
	lineEnd := s.LineEnd(s.Caret)
	hint := strings.TrimSpace(s.Slice(s.Caret+fenceLen, lineEnd))

	bodyStart := lineEnd
	if bodyStart < s.End {
		bodyStart++
	}
	closeAt, closeLineEnd, ok := r.findClosingFence(s, bodyStart, fenceLen)
	node := &RawText{Name: "codeblock", AttrList: NewAttrList(), Pos: pos}
	lang := setFenceClass(node.AttrList, hint)
	var body string
	var resumeAt int
	if ok {
		body = strings.TrimSuffix(s.Slice(bodyStart, closeAt), "\n")
		resumeAt = closeLineEnd
		if resumeAt < s.End {
			resumeAt++
		}
	} else {
		d.Sink.Record("FencedCodeNP", "E200", pos, fenceLen)
		body = s.Slice(bodyStart, s.End)
		resumeAt = s.End
	}
	node.Data = body
	r.validate(d, node, lang, pos)
	d.Update(resumeAt)
	return MakeResult{List: []Node{node}}
}

func (fencedCodeRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (fencedCodeRecognizer) Messages() map[string]string {
	return map[string]string{
		"E100": "code sink flagged this block",
		"E200": "fenced code block opened with {0} '~' never closed",
	}
}

// setFenceClass sets the `class` attribute for a fenced block's
// language hint and returns the bare language name (for code-sink
// validation), following the hint grammar: a true shebang path
// (`#!/usr/bin/env python`) is preserved as-is with its gutter kept;
// a colon-prefixed hint (`:python`) is stripped to its language name
// with the gutter turned off; a bare word is treated as a language
// name with the gutter left on; no hint at all falls back to a plain,
// gutterless block.
func setFenceClass(attrs *AttrList, hint string) string {
	switch {
	case hint == "":
		attrs.Set("class", "brush: plain; gutter: false;")
		return ""
	case strings.HasPrefix(hint, "#!"):
		attrs.Set("class", fmt.Sprintf("brush: %s; gutter: true;", hint))
		return shebangLang(hint)
	case strings.HasPrefix(hint, ":"):
		lang := strings.TrimSpace(hint[1:])
		attrs.Set("class", fmt.Sprintf("brush: %s; gutter: false;", lang))
		return lang
	default:
		attrs.Set("class", fmt.Sprintf("brush: %s; gutter: true;", hint))
		return hint
	}
}

// shebangLang extracts the interpreter name from a shebang path, e.g.
// "#!/usr/bin/env python3" -> "python3", "#!/bin/sh" -> "sh".
func shebangLang(hint string) string {
	fields := strings.Fields(hint)
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	if i := strings.LastIndexByte(last, '/'); i != -1 {
		return last[i+1:]
	}
	return last
}

func (fencedCodeRecognizer) findClosingFence(s *Scanner, from, minLen int) (int, int, bool) {
	i := from
	for i < s.End {
		if s.AtLineStart(i) && s.At(i) == '~' {
			n := countRun(s, i, '~')
			if n >= minLen {
				rest := strings.TrimSpace(s.Slice(i+n, s.LineEnd(i)))
				if rest == "" {
					return i, s.LineEnd(i), true
				}
			}
		}
		i = s.LineEnd(i) + 1
	}
	return 0, 0, false
}

func (fencedCodeRecognizer) validate(d *Dispatcher, node *RawText, hint string, pos Position) {
	if d.Config.CodeSink == nil {
		return
	}
	if !strings.EqualFold(hint, "go") {
		return
	}
	findings := d.Config.CodeSink.Compile(d.URI, "file", node.Data)
	for _, f := range findings {
		d.Sink.Record("FencedCodeNP", "E100", Position{Line: pos.Line + f.Line, Column: f.Column}, f.Message)
	}
}

// indentedCodeRecognizer recognizes a run of consecutive lines each
// indented by at least four spaces, at a point where a new block may
// begin (line start). The common four-space indentation is stripped
// from every line before being stored as the block's content.
type indentedCodeRecognizer struct{}

// NewIndentedCodeRecognizer returns the indented-code-block recognizer.
func NewIndentedCodeRecognizer() Recognizer { return indentedCodeRecognizer{} }

func (indentedCodeRecognizer) Name() string { return "IndentedCodeNP" }

func (r indentedCodeRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) || !strings.HasPrefix(s.Peek(4), "    ") {
		return MakeResult{}
	}
	pos := s.Pos()
	var lines []string
	i := s.Caret
	for i < s.End && strings.HasPrefix(s.Slice(i, i+4), "    ") {
		end := s.LineEnd(i)
		lines = append(lines, s.Slice(i+4, end))
		i = end
		if i < s.End {
			i++
		}
	}
	node := &RawText{Name: "codeblock", AttrList: NewAttrList(), Pos: pos, Data: strings.Join(lines, "\n")}
	d.Update(i)
	return MakeResult{List: []Node{node}}
}

func (indentedCodeRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (indentedCodeRecognizer) Messages() map[string]string { return nil }
