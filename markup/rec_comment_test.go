package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestCommentAngleBracketForm(t *testing.T) {
	doc := parse(t, "<!-- a note -->\n")
	var comments []markup.Node
	findAll(doc.Root, func(n markup.Node) bool {
		_, ok := n.(*markup.Comment)
		return ok
	}, &comments)
	if len(comments) != 1 {
		t.Fatalf("expected exactly one comment, got %d", len(comments))
	}
	if got := comments[0].(*markup.Comment).Data; got != " a note " {
		t.Fatalf("comment data = %q, want %q", got, " a note ")
	}
}

func TestCommentShortcutForm(t *testing.T) {
	doc := parse(t, "%%! a note %%\n")
	var comments []markup.Node
	findAll(doc.Root, func(n markup.Node) bool {
		_, ok := n.(*markup.Comment)
		return ok
	}, &comments)
	if len(comments) != 1 {
		t.Fatalf("expected exactly one comment, got %d", len(comments))
	}
}

// An unclosed comment logs its own E100, then the dispatcher falls
// through to the stray-'<' paragraph text and EntityNP logs a second
// E100 for the leading '<' it absorbs as literal text (see
// dispatch_test.go's TestScenarioStrayLessThanInTag for the same
// cascade with ElementNP).
func TestCommentUnclosedLogsE100(t *testing.T) {
	doc := parse(t, "<!-- never closes\n")
	if len(doc.Diagnostics) != 2 || doc.Diagnostics[0].Module != "CommentNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want CommentNP E100 first", doc.Diagnostics)
	}
	if doc.Diagnostics[1].Module != "EntityNP" || doc.Diagnostics[1].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want EntityNP E100 second", doc.Diagnostics)
	}
}
