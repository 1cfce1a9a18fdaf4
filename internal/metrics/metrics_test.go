package metrics

import "testing"

func TestLanguageLabel(t *testing.T) {
	if got := LanguageLabel("es", true); got != "es" {
		t.Fatalf("expected es, got %s", got)
	}
	if got := LanguageLabel("tlh", false); got != "other" {
		t.Fatalf("expected other for unknown code, got %s", got)
	}
	if got := LanguageLabel("", true); got != "other" {
		t.Fatalf("expected other for empty code, got %s", got)
	}
}
