package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestLatexInlineDollarForm(t *testing.T) {
	doc := parse(t, "$x^2$\n")
	nodes := findByNameKind(doc.Root, "rawtext", "latex")
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one inline latex span, got %d", len(nodes))
	}
	if got := nodes[0].(*markup.RawText).Data; got != "x^2" {
		t.Fatalf("data = %q, want %q", got, "x^2")
	}
}

func TestLatexInlineParenForm(t *testing.T) {
	doc := parse(t, `\(x^2\)`+"\n")
	nodes := findByNameKind(doc.Root, "rawtext", "latex")
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one inline latex span, got %d", len(nodes))
	}
}

func TestLatexDisplayForm(t *testing.T) {
	doc := parse(t, "$$x^2$$\n")
	nodes := findByNameKind(doc.Root, "rawtext", "latex-display")
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one display latex span, got %d", len(nodes))
	}
}

func TestLatexInlineUnclosedLogsE100(t *testing.T) {
	doc := parse(t, "$x^2\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "LatexInlineNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want a single LatexInlineNP E100", doc.Diagnostics)
	}
}
