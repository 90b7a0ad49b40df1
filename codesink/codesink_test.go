package codesink_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/codesink"
)

func TestNoopSinkAcceptsAnything(t *testing.T) {
	var s codesink.Sink = codesink.NoopSink{}
	if s.Name() != "noop" {
		t.Fatalf("Name() = %q, want %q", s.Name(), "noop")
	}
	if findings := s.Compile("doc.mu", "file", "this is not valid anything {{{"); findings != nil {
		t.Fatalf("expected nil findings, got %+v", findings)
	}
}

func TestGoSinkAcceptsValidSource(t *testing.T) {
	var s codesink.Sink = codesink.GoSink{}
	src := "package main\n\nfunc main() {}\n"
	if findings := s.Compile("doc.mu", "file", src); findings != nil {
		t.Fatalf("expected no findings for valid source, got %+v", findings)
	}
}

func TestGoSinkReportsSyntaxError(t *testing.T) {
	var s codesink.Sink = codesink.GoSink{}
	src := "package main\n\nfunc main() {\n"
	findings := s.Compile("doc.mu", "file", src)
	if len(findings) == 0 {
		t.Fatalf("expected at least one finding for unclosed function body")
	}
	if findings[0].Message == "" {
		t.Fatalf("expected a non-empty finding message")
	}
}

func TestGoSinkStmtListMode(t *testing.T) {
	var s codesink.Sink = codesink.GoSink{}
	if findings := s.Compile("doc.mu", "stmt-list", "x := 1\ny := x + 1\n_ = y"); findings != nil {
		t.Fatalf("expected no findings for a valid statement list, got %+v", findings)
	}
	if findings := s.Compile("doc.mu", "stmt-list", "x := )(\n"); len(findings) == 0 {
		t.Fatalf("expected findings for an invalid statement list")
	}
}
