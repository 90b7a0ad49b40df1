package markup

import (
	"regexp"
	"strings"
)

var macroRegexp = regexp.MustCompile(`^([A-Za-z_][\w-]*)[ \t]*:=[ \t]*(.*)$`)

// macroRecognizer recognizes one `name := replacement` line inside a
// "define" container, producing a self-contained Void node carrying
// the macro's name and raw replacement text. Expanding a macro's uses
// against its definition is the job of the macro-expanding converter,
// which this module does not implement; this recognizer only captures
// the definition as data.
//
// Grounded on original_source/default/define.py's MacroNP.
type macroRecognizer struct{}

// NewMacroRecognizer returns the macro-definition recognizer.
func NewMacroRecognizer() Recognizer { return macroRecognizer{} }

func (macroRecognizer) Name() string { return "MacroNP" }

func (macroRecognizer) MakeNode(d *Dispatcher) MakeResult {
	s := d.Scanner
	if !s.AtLineStart(s.Caret) {
		return MakeResult{}
	}
	lineEnd := s.LineEnd(s.Caret)
	m := macroRegexp.FindStringSubmatch(s.Slice(s.Caret, lineEnd))
	if m == nil {
		return MakeResult{}
	}
	pos := s.Pos()
	node := &Void{Name: "macro", AttrList: NewAttrList(), Pos: pos}
	node.AttrList.Set("name", m[1])
	node.AttrList.Set("value", strings.TrimSpace(m[2]))
	resume := lineEnd
	if resume < s.End {
		resume++
	}
	d.Update(resume)
	return MakeResult{List: []Node{node}}
}

func (macroRecognizer) Close(Node, *Dispatcher, Scratch) (Position, bool) { return Position{}, false }

func (macroRecognizer) Messages() map[string]string { return nil }
