package fallback

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestCatalogEveryListNonEmpty(t *testing.T) {
	if len(replies[DefaultLanguage]) == 0 {
		t.Fatal("default language must have replies")
	}
	for code, list := range replies {
		if len(list) == 0 {
			t.Fatalf("language %s has no replies", code)
		}
		for _, reply := range list {
			if strings.TrimSpace(reply) == "" {
				t.Fatalf("language %s has a blank reply", code)
			}
		}
	}
}

func TestCatalogPickFromLanguageList(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewPCG(1, 2)))
	allowed := c.Candidates("es")
	for i := 0; i < 50; i++ {
		got := c.Pick("es")
		if !slices.Contains(allowed, got) {
			t.Fatalf("reply %q is not in the spanish list", got)
		}
	}
}

func TestCatalogUnknownLanguageUsesEnglish(t *testing.T) {
	c := NewCatalog(nil)
	english := replies[DefaultLanguage]
	for _, code := range []string{"sw", "", "xx-yy", "mr"} {
		got := c.Pick(code)
		if !slices.Contains(english, got) {
			t.Fatalf("Pick(%q) = %q, expected an english reply", code, got)
		}
		if c.Covers(code) {
			t.Fatalf("expected %q to be uncovered", code)
		}
	}
}

func TestCatalogPickVaries(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewPCG(7, 11)))
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[c.Pick("en")] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected more than one distinct reply, got %d", len(seen))
	}
}

func TestCatalogCaseInsensitiveCode(t *testing.T) {
	c := NewCatalog(nil)
	if !slices.Contains(replies["fr"], c.Pick(" FR ")) {
		t.Fatal("expected french reply for upper-case code")
	}
}
