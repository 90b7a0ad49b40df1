package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func findPIs(root *markup.Element) []*markup.ProcessingInstruction {
	var out []markup.Node
	findAll(root, func(n markup.Node) bool {
		_, ok := n.(*markup.ProcessingInstruction)
		return ok
	}, &out)
	pis := make([]*markup.ProcessingInstruction, len(out))
	for i, n := range out {
		pis[i] = n.(*markup.ProcessingInstruction)
	}
	return pis
}

func TestProcessingInstructionAngleBracketForm(t *testing.T) {
	doc := parse(t, "<?target some data?>\n")
	pis := findPIs(doc.Root)
	if len(pis) != 1 {
		t.Fatalf("expected exactly one processing instruction, got %d", len(pis))
	}
	if pis[0].Target != "target" || pis[0].Data != "some data" {
		t.Fatalf("got target=%q data=%q", pis[0].Target, pis[0].Data)
	}
}

func TestProcessingInstructionShortcutForm(t *testing.T) {
	doc := parse(t, "%%?target some data%%\n")
	pis := findPIs(doc.Root)
	if len(pis) != 1 {
		t.Fatalf("expected exactly one processing instruction, got %d", len(pis))
	}
	if pis[0].Target != "target" {
		t.Fatalf("target = %q, want %q", pis[0].Target, "target")
	}
}

// An unclosed processing instruction logs its own E100, then EntityNP
// logs a second E100 for the leading '<' it absorbs as literal
// paragraph text once nothing claims the line (same cascade as
// dispatch_test.go's TestScenarioStrayLessThanInTag).
func TestProcessingInstructionUnclosedLogsE100(t *testing.T) {
	doc := parse(t, "<?target unterminated\n")
	if len(doc.Diagnostics) != 2 || doc.Diagnostics[0].Module != "ProcessingInstructionNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want ProcessingInstructionNP E100 first", doc.Diagnostics)
	}
	if doc.Diagnostics[1].Module != "EntityNP" || doc.Diagnostics[1].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want EntityNP E100 second", doc.Diagnostics)
	}
}
