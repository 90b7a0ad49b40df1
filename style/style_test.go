package style_test

import (
	"testing"

	"github.com/LaudateCorpus1/lexor-parser-default/markup"
	"github.com/LaudateCorpus1/lexor-parser-default/style"
)

func TestDefaultMappingResolves(t *testing.T) {
	cfg := style.Default()
	if _, err := markup.Parse("hello world\n", cfg); err != nil {
		t.Fatalf("Parse with style.Default(): %v", err)
	}
}

func TestRepositoryCoversEveryMappedRecognizer(t *testing.T) {
	repo := style.Repository()
	mapping := style.Mapping()
	for ctxName, entry := range mapping {
		for _, rec := range entry.Recognizers {
			if rec == nil {
				t.Fatalf("context %q has a nil recognizer in its list", ctxName)
			}
			if _, ok := repo[rec.Name()]; !ok {
				t.Fatalf("context %q references %q, missing from Repository()", ctxName, rec.Name())
			}
		}
	}
}

func TestDefaultsHasInlineSetting(t *testing.T) {
	defaults := style.Defaults()
	if defaults["inline"] != "on" {
		t.Fatalf("Defaults()[\"inline\"] = %q, want \"on\"", defaults["inline"])
	}
}
