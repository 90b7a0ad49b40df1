package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestAtxHeaderLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		in := ""
		for i := 0; i < level; i++ {
			in += "#"
		}
		in += " Title\n\n"
		doc := parse(t, in)
		name := "h" + string(rune('0'+level))
		hs := findByNameKind(doc.Root, "element", name)
		if len(hs) != 1 {
			t.Fatalf("level %d: expected exactly one %s, got %d", level, name, len(hs))
		}
	}
}

func TestAtxHeaderWithOwnLineAttributeBlock(t *testing.T) {
	doc := parse(t, "# Title {#sec1}\n\n")
	h1s := findByNameKind(doc.Root, "element", "h1")
	if len(h1s) != 1 {
		t.Fatalf("expected exactly one h1, got %d", len(h1s))
	}
	if id, _ := h1s[0].(*markup.Element).AttrList.Get("id"); id != "sec1" {
		t.Fatalf("id = %q, want %q", id, "sec1")
	}
}

// The trailing {...} block on the line immediately after a header is
// merged into the header's own attributes, not left as paragraph text.
func TestAtxHeaderSecondAttributeBlockOnNextLine(t *testing.T) {
	doc := parse(t, "# Title\n{data-extra=yes}\n\n")
	h1s := findByNameKind(doc.Root, "element", "h1")
	if len(h1s) != 1 {
		t.Fatalf("expected exactly one h1, got %d", len(h1s))
	}
	h1 := h1s[0].(*markup.Element)
	if v, _ := h1.AttrList.Get("data-extra"); v != "yes" {
		t.Fatalf("data-extra = %q, want %q (attrs: %v)", v, "yes", h1.AttrList.Keys())
	}
	if ps := findByNameKind(doc.Root, "element", "p"); len(ps) != 0 {
		t.Fatalf("expected the second attribute block to be consumed, not left as a paragraph, got %d paragraphs", len(ps))
	}
}

func TestSetextHeaderLevels(t *testing.T) {
	doc := parse(t, "Title One\n=========\n\nTitle Two\n---------\n\n")
	if h1s := findByNameKind(doc.Root, "element", "h1"); len(h1s) != 1 {
		t.Fatalf("expected exactly one h1, got %d", len(h1s))
	}
	if h2s := findByNameKind(doc.Root, "element", "h2"); len(h2s) != 1 {
		t.Fatalf("expected exactly one h2, got %d", len(h2s))
	}
}
