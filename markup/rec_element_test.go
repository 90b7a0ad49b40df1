package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

// Void names from the spec's full 22-name table, including the eight
// that were missing before this pass (basefont, frame, isindex,
// command, keygen, include, documentclass, bibliography).
func TestElementVoidNames(t *testing.T) {
	for _, name := range []string{"br", "hr", "command", "documentclass", "bibliography", "isindex", "frame", "basefont", "keygen", "include"} {
		doc := parse(t, "<"+name+">\n")
		voids := findByNameKind(doc.Root, "void", name)
		if len(voids) != 1 {
			t.Fatalf("%s: expected exactly one void node, got %d (diagnostics %+v)", name, len(voids), doc.Diagnostics)
		}
		if els := findByNameKind(doc.Root, "element", name); len(els) != 0 {
			t.Fatalf("%s: unexpectedly parsed as a regular element", name)
		}
	}
}

// Raw-text names from the spec's table: their body must never be
// re-scanned for nested markup.
func TestElementRawTextNames(t *testing.T) {
	for _, name := range []string{"script", "style", "textarea", "title", "undef", "usepackage"} {
		doc := parse(t, "<"+name+">*not emphasis*</"+name+">\n")
		rts := findByNameKind(doc.Root, "rawtext", name)
		if len(rts) != 1 {
			t.Fatalf("%s: expected exactly one rawtext node, got %d", name, len(rts))
		}
		if got := rts[0].(*markup.RawText).Data; got != "*not emphasis*" {
			t.Fatalf("%s: data = %q, want literal unparsed content", name, got)
		}
	}
}

// <pre> must NOT be raw-text: its body is ordinary nested markup.
func TestElementPreIsNotRawText(t *testing.T) {
	doc := parse(t, "<pre>*em*</pre>\n")
	if rts := findByNameKind(doc.Root, "rawtext", "pre"); len(rts) != 0 {
		t.Fatalf("expected <pre> to not be raw-text, got %d rawtext nodes", len(rts))
	}
	els := findByNameKind(doc.Root, "element", "pre")
	if len(els) != 1 {
		t.Fatalf("expected exactly one pre element, got %d", len(els))
	}
	if ems := findByNameKind(els[0].(*markup.Element), "element", "em"); len(ems) != 1 {
		t.Fatalf("expected pre's body to be rescanned for *em* markup, got %d em elements", len(ems))
	}
}

// AUTO_CLOSE: a block-level sibling opening inside an unclosed <p>
// closes the p first instead of nesting.
func TestElementAutoCloseParagraph(t *testing.T) {
	doc := parse(t, "<p>first<h1>Heading</h1>\n")
	ps := findByNameKind(doc.Root, "element", "p")
	if len(ps) != 1 {
		t.Fatalf("expected exactly one p, got %d", len(ps))
	}
	if h1s := findByNameKind(ps[0].(*markup.Element), "element", "h1"); len(h1s) != 0 {
		t.Fatalf("h1 should have closed the p, not nested inside it")
	}
	if h1s := findByNameKind(doc.Root, "element", "h1"); len(h1s) != 1 {
		t.Fatalf("expected exactly one top-level h1, got %d", len(h1s))
	}
}

// AUTO_CLOSE_FIRST: an li with no element children yet closes as soon
// as a sibling li opens.
func TestElementAutoCloseFirstListItem(t *testing.T) {
	doc := parse(t, "<li>one<li>two</li>\n")
	lis := findByNameKind(doc.Root, "element", "li")
	if len(lis) != 2 {
		t.Fatalf("expected exactly two li elements, got %d", len(lis))
	}
	first := lis[0].(*markup.Element)
	// findByNameKind counts the node it starts from, so the first li
	// itself is the only match when nothing is nested inside it.
	if nested := findByNameKind(first, "element", "li"); len(nested) != 1 {
		t.Fatalf("second li should have closed the first, not nested inside it")
	}
}
