package markup_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
)

func TestEntityNamedReference(t *testing.T) {
	doc := parse(t, "a &amp; b\n")
	var entities []markup.Node
	findAll(doc.Root, func(n markup.Node) bool {
		e, ok := n.(*markup.Entity)
		return ok && e.Raw == "&amp;"
	}, &entities)
	if len(entities) != 1 {
		t.Fatalf("expected exactly one &amp; entity, got %d", len(entities))
	}
	if got := entities[0].(*markup.Entity).Data; got != "&" {
		t.Fatalf("entity data = %q, want %q", got, "&")
	}
}

func TestEntityNumericReference(t *testing.T) {
	doc := parse(t, "&#65;&#x42;\n")
	var entities []markup.Node
	findAll(doc.Root, func(n markup.Node) bool {
		_, ok := n.(*markup.Entity)
		return ok
	}, &entities)
	if len(entities) != 2 {
		t.Fatalf("expected exactly two entities, got %d", len(entities))
	}
	if entities[0].(*markup.Entity).Data != "A" || entities[1].(*markup.Entity).Data != "B" {
		t.Fatalf("got %q and %q, want A and B", entities[0].(*markup.Entity).Data, entities[1].(*markup.Entity).Data)
	}
}

func TestEntityUnknownNameLogsE100(t *testing.T) {
	doc := parse(t, "&bogus;\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "EntityNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want a single EntityNP E100", doc.Diagnostics)
	}
}

func TestEntityBackslashEscape(t *testing.T) {
	doc := parse(t, `\* not emphasis`+"\n")
	var entities []markup.Node
	findAll(doc.Root, func(n markup.Node) bool {
		_, ok := n.(*markup.Entity)
		return ok
	}, &entities)
	if len(entities) != 1 || entities[0].(*markup.Entity).Data != "*" {
		t.Fatalf("expected a single escaped '*' entity, got %+v", entities)
	}
}

func TestEntityStrayLessThanLogsE100(t *testing.T) {
	doc := parse(t, "a < b\n")
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Module != "EntityNP" || doc.Diagnostics[0].Code != "E100" {
		t.Fatalf("diagnostics = %+v, want a single EntityNP E100", doc.Diagnostics)
	}
}
