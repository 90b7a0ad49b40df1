package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestReferenceBlockDefinition(t *testing.T) {
	doc := parse(t, `[go]: https://go.dev "The Go site"`+"\n")
	refs := findByNameKind(doc.Root, "void", "address_reference")
	if len(refs) != 1 {
		t.Fatalf("expected exactly one address_reference, got %d", len(refs))
	}
	v := refs[0].(*markup.Void)
	if id, _ := v.AttrList.Get("_reference_name"); id != "go" {
		t.Fatalf("_reference_name = %q, want %q", id, "go")
	}
	if addr, _ := v.AttrList.Get("_address"); addr != "https://go.dev" {
		t.Fatalf("_address = %q, want %q", addr, "https://go.dev")
	}
	if title, _ := v.AttrList.Get("title"); title != "The Go site" {
		t.Fatalf("title = %q, want %q", title, "The Go site")
	}
}

func TestReferenceInlineWithURLAndTitle(t *testing.T) {
	doc := parse(t, `[Go](https://go.dev "site")`+"\n")
	links := findByNameKind(doc.Root, "element", "a")
	if len(links) != 1 {
		t.Fatalf("expected exactly one a, got %d", len(links))
	}
	a := links[0].(*markup.Element)
	if href, _ := a.AttrList.Get("href"); href != "https://go.dev" {
		t.Fatalf("href = %q, want %q", href, "https://go.dev")
	}
	if title, _ := a.AttrList.Get("title"); title != "site" {
		t.Fatalf("title = %q, want %q", title, "site")
	}
}

func TestReferenceInlineByID(t *testing.T) {
	doc := parse(t, "[Go][golang]\n")
	links := findByNameKind(doc.Root, "element", "a")
	if len(links) != 1 {
		t.Fatalf("expected exactly one a, got %d", len(links))
	}
	if ref, _ := links[0].(*markup.Element).AttrList.Get("data-ref"); ref != "golang" {
		t.Fatalf("data-ref = %q, want %q", ref, "golang")
	}
}

// The collapsed `[id]` shorthand uses its own link text, lowercased,
// as the reference id.
func TestReferenceInlineCollapsed(t *testing.T) {
	doc := parse(t, "[Golang]\n")
	links := findByNameKind(doc.Root, "element", "a")
	if len(links) != 1 {
		t.Fatalf("expected exactly one a, got %d", len(links))
	}
	if ref, _ := links[0].(*markup.Element).AttrList.Get("data-ref"); ref != "golang" {
		t.Fatalf("data-ref = %q, want %q", ref, "golang")
	}
}

func TestReferenceInlineImageForm(t *testing.T) {
	doc := parse(t, `![alt text](pic.png)`+"\n")
	imgs := findByNameKind(doc.Root, "void", "img")
	if len(imgs) != 1 {
		t.Fatalf("expected exactly one img, got %d", len(imgs))
	}
	v := imgs[0].(*markup.Void)
	if alt, _ := v.AttrList.Get("alt"); alt != "alt text" {
		t.Fatalf("alt = %q, want %q", alt, "alt text")
	}
	if href, _ := v.AttrList.Get("href"); href != "pic.png" {
		t.Fatalf("href = %q, want %q", href, "pic.png")
	}
}
