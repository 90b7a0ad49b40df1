package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

// The metadata block is only recognized at the very first byte of the
// document, and ends at the first blank line.
func TestMetaBlockBasic(t *testing.T) {
	doc := parse(t, "title: Hello\nauthor: Me\n\nBody text\n")
	metas := findByNameKind(doc.Root, "element", "lexor-meta")
	if len(metas) != 1 {
		t.Fatalf("expected exactly one lexor-meta block, got %d", len(metas))
	}
	entries := findByNameKind(metas[0].(*markup.Element), "element", "entry")
	if len(entries) != 2 {
		t.Fatalf("expected exactly two entries, got %d", len(entries))
	}
	first := entries[0].(*markup.Element)
	if name, _ := first.AttrList.Get("name"); name != "title" {
		t.Fatalf("name = %q, want %q", name, "title")
	}
	items := findByNameKind(first, "rawtext", "item")
	if len(items) != 1 || items[0].(*markup.RawText).Data != "Hello" {
		t.Fatalf("unexpected item children: %+v", items)
	}
}

// A continuation line indented four or more spaces adds another value
// to the entry directly above it.
func TestMetaBlockContinuationLine(t *testing.T) {
	doc := parse(t, "title: Hello\n    World\n\nBody\n")
	metas := findByNameKind(doc.Root, "element", "lexor-meta")
	entries := findByNameKind(metas[0].(*markup.Element), "element", "entry")
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	items := findByNameKind(entries[0].(*markup.Element), "rawtext", "item")
	if len(items) != 2 {
		t.Fatalf("expected two item values (one per continuation), got %d", len(items))
	}
	if items[0].(*markup.RawText).Data != "Hello" || items[1].(*markup.RawText).Data != "World" {
		t.Fatalf("unexpected item values: %q, %q", items[0].(*markup.RawText).Data, items[1].(*markup.RawText).Data)
	}
}

// A lone leading horizontal rule with no key/value lines after it is
// emitted on its own, with no lexor-meta wrapper.
func TestMetaBlockLeadingRuleOnly(t *testing.T) {
	doc := parse(t, "---\n\nBody\n")
	if metas := findByNameKind(doc.Root, "element", "lexor-meta"); len(metas) != 0 {
		t.Fatalf("expected no lexor-meta wrapper, got %d", len(metas))
	}
	if hrs := findByNameKind(doc.Root, "void", "hr"); len(hrs) != 1 {
		t.Fatalf("expected exactly one hr, got %d", len(hrs))
	}
}

// Once the document has moved past byte 0, a key: value-shaped line is
// no longer treated as metadata.
func TestMetaBlockNotRecognizedMidDocument(t *testing.T) {
	doc := parse(t, "Body\n\ntitle: Hello\n\n")
	if metas := findByNameKind(doc.Root, "element", "lexor-meta"); len(metas) != 0 {
		t.Fatalf("expected no lexor-meta block once past the document start, got %d", len(metas))
	}
}
