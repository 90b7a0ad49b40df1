package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestFencedCodeBlockWithLanguageHint(t *testing.T) {
	doc := parse(t, "~~~~python\nprint(1)\n~~~~\n")
	blocks := findByNameKind(doc.Root, "rawtext", "codeblock")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one codeblock, got %d", len(blocks))
	}
	block := blocks[0].(*markup.RawText)
	if block.Data != "print(1)" {
		t.Fatalf("codeblock data = %q, want %q", block.Data, "print(1)")
	}
	class, _ := block.AttrList.Get("class")
	if class != "brush: python; gutter: true;" {
		t.Fatalf("class = %q, want %q", class, "brush: python; gutter: true;")
	}
}

func TestFencedCodeBlockUnclosedLogsE200(t *testing.T) {
	doc := parse(t, "~~~~\nprint(1)\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "FencedCodeNP" || doc.Diagnostics[0].Code != "E200" {
		t.Fatalf("diagnostics = %+v, want a single FencedCodeNP E200", doc.Diagnostics)
	}
}

func TestIndentedCodeBlock(t *testing.T) {
	doc := parse(t, "    line one\n    line two\n")
	blocks := findByNameKind(doc.Root, "rawtext", "codeblock")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one codeblock, got %d", len(blocks))
	}
	if got := blocks[0].(*markup.RawText).Data; got != "line one\nline two" {
		t.Fatalf("codeblock data = %q, want %q", got, "line one\nline two")
	}
}
