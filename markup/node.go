package markup

// Node is the common interface satisfied by every concrete node kind
// this parser produces. The concrete kind set is closed and small: a
// generic Element/Void/RawText trio carries every tag-shaped construct
// (headers, lists, references, HTML elements all become one of these
// three, distinguished only by Name), alongside Text, Entity, Comment,
// CData, DocumentType and ProcessingInstruction for the remaining leaf
// constructs. This mirrors the document's own closed node taxonomy
// rather than giving every construct (list, list item, quoted span,
// header, ...) its own Go type the way the teacher's org package does
// for org-mode's inline markup: those constructs are genuine distinct
// *syntax* in org-mode, but here they are all the same "tag with
// attributes and children" shape wearing a different Name.
type Node interface {
	Position() Position
	Kind() string
}

// ALRef is one entry of a node's accumulated `[ref]` shortcut list
// (the `_alref` concept from the attribute grammar): the attribute
// parser appends one per `[ref]` token it consumes, in the order seen.
type ALRef struct {
	Pos Position
	Ref string
}

// AttributeTarget is implemented by every node kind the attribute
// sub-parser (AttrParser, C7) can write into: Element, Void and
// RawText all carry an attribute list and an ALRef list.
type AttributeTarget interface {
	Node
	Attrs() *AttrList
	AddALRef(pos Position, ref string)
	ALRefs() []ALRef
}

// Text is a run of literal character data with no markup meaning.
type Text struct {
	Data string
	Pos  Position
}

func (n *Text) Position() Position { return n.Pos }
func (n *Text) Kind() string       { return "text" }

// Entity is a named or numeric character reference, kept distinct
// from Text so a writer can choose to re-escape or pass it through.
type Entity struct {
	Data string // the entity's replacement text, e.g. "&"
	Raw  string // as written, e.g. "&amp;"
	Pos  Position
}

func (n *Entity) Position() Position { return n.Pos }
func (n *Entity) Kind() string       { return "entity" }

// Comment is a `<!-- ... -->`-shaped or `%%! ... %%`-shaped comment.
type Comment struct {
	Data string
	Pos  Position
}

func (n *Comment) Position() Position { return n.Pos }
func (n *Comment) Kind() string       { return "comment" }

// CData is a literal `<![CDATA[ ... ]]>` section.
type CData struct {
	Data string
	Pos  Position
}

func (n *CData) Position() Position { return n.Pos }
func (n *CData) Kind() string       { return "cdata" }

// DocumentType is a `<!DOCTYPE ...>`-shaped declaration.
type DocumentType struct {
	Data string
	Pos  Position
}

func (n *DocumentType) Position() Position { return n.Pos }
func (n *DocumentType) Kind() string       { return "doctype" }

// ProcessingInstruction is a `<?target data?>`-shaped instruction.
type ProcessingInstruction struct {
	Target string
	Data   string
	Pos    Position
}

func (n *ProcessingInstruction) Position() Position { return n.Pos }
func (n *ProcessingInstruction) Kind() string        { return "pi" }

// Void is a self-closing, attribute-bearing, childless node: `<br/>`,
// a horizontal rule, a reference-address marker. It never goes on the
// dispatcher's open-node stack.
type Void struct {
	Name     string
	AttrList *AttrList
	ALRefList []ALRef
	Pos      Position
}

func (n *Void) Position() Position { return n.Pos }
func (n *Void) Kind() string       { return "void" }
func (n *Void) Attrs() *AttrList    { return n.AttrList }
func (n *Void) AddALRef(pos Position, ref string) {
	n.ALRefList = append(n.ALRefList, ALRef{Pos: pos, Ref: ref})
}
func (n *Void) ALRefs() []ALRef { return n.ALRefList }

// RawText is an attribute-bearing node whose body is opaque to the
// parser (its content is never itself re-scanned for nested markup):
// an embedded code block, raw CDATA-like payload, style/script body.
// It never goes on the open-node stack.
type RawText struct {
	Name     string
	Data     string
	AttrList *AttrList
	ALRefList []ALRef
	Pos      Position
}

func (n *RawText) Position() Position { return n.Pos }
func (n *RawText) Kind() string       { return "rawtext" }
func (n *RawText) Attrs() *AttrList    { return n.AttrList }
func (n *RawText) AddALRef(pos Position, ref string) {
	n.ALRefList = append(n.ALRefList, ALRef{Pos: pos, Ref: ref})
}
func (n *RawText) ALRefs() []ALRef { return n.ALRefList }

// Element is the generic tag-shaped node: attributes plus an ordered
// list of children. Every block and inline construct that is not one
// of the other concrete kinds above (headers, lists, list items,
// inline references, paragraphs, the document
// root itself) is an *Element whose Name carries what it is.
type Element struct {
	Name     string
	AttrList *AttrList
	ALRefList []ALRef
	Children []Node
	Pos      Position
}

// NewElement returns an Element with an initialized, empty attribute list.
func NewElement(name string, pos Position) *Element {
	return &Element{Name: name, AttrList: NewAttrList(), Pos: pos}
}

func (n *Element) Position() Position { return n.Pos }
func (n *Element) Kind() string       { return "element" }
func (n *Element) Attrs() *AttrList    { return n.AttrList }
func (n *Element) AddALRef(pos Position, ref string) {
	n.ALRefList = append(n.ALRefList, ALRef{Pos: pos, Ref: ref})
}
func (n *Element) ALRefs() []ALRef { return n.ALRefList }

// AppendChild appends c to the element's children in document order.
func (n *Element) AppendChild(c Node) {
	n.Children = append(n.Children, c)
}

// LastChild returns the most recently appended child, or nil.
func (n *Element) LastChild() Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// DocumentRootName is the Name of the synthetic root element the
// dispatcher pushes before parsing begins.
const DocumentRootName = "#document"
