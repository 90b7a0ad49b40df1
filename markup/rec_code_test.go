package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestCodeInlineBasic(t *testing.T) {
	doc := parse(t, "`hello`\n")
	codes := findByNameKind(doc.Root, "rawtext", "code")
	if len(codes) != 1 {
		t.Fatalf("expected exactly one code span, got %d", len(codes))
	}
	if got := codes[0].(*markup.RawText).Data; got != "hello" {
		t.Fatalf("code span data = %q, want %q", got, "hello")
	}
}

func TestCodeInlineLongerCloseLogsAmbiguity(t *testing.T) {
	doc := parse(t, "``a```\n")
	found := false
	for _, d := range doc.Diagnostics {
		if d.Module == "CodeInlineNP" && d.Code == "E100" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a CodeInlineNP E100 diagnostic, got %+v", doc.Diagnostics)
	}
}

func TestCodeInlineUnclosedLogsE101(t *testing.T) {
	doc := parse(t, "``never closes\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "CodeInlineNP" || doc.Diagnostics[0].Code != "E101" {
		t.Fatalf("diagnostics = %+v, want a single CodeInlineNP E101", doc.Diagnostics)
	}
}
