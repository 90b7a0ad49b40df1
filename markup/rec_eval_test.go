package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestEvalBlockCapturesLanguageAndBody(t *testing.T) {
	doc := parse(t, "%%eval go\nfmt.Println(1)\n%%\n")
	blocks := findByNameKind(doc.Root, "rawtext", "eval")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one eval block, got %d", len(blocks))
	}
	block := blocks[0].(*markup.RawText)
	if block.Data != "fmt.Println(1)" {
		t.Fatalf("eval data = %q, want %q", block.Data, "fmt.Println(1)")
	}
	if lang, _ := block.AttrList.Get("data-lang"); lang != "go" {
		t.Fatalf("data-lang = %q, want %q", lang, "go")
	}
}

func TestEvalBlockUnclosedLogsE100(t *testing.T) {
	doc := parse(t, "%%eval\nbody never closes\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "EvalNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want a single EvalNP E100", doc.Diagnostics)
	}
}
