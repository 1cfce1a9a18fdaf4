package tokens

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	got := Split("Bonjour, S’il vous plaît! 42 self-harm").Words()
	want := []string{"bonjour", "s'il", "vous", "plaît", "self", "harm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Split() = %v, want %v", got, want)
	}
}

func TestSplitKeepsCombiningMarks(t *testing.T) {
	if got := Split("मैं बहुत दुखी हूं").Len(); got != 4 {
		t.Fatalf("expected 4 devanagari tokens, got %d", got)
	}
}

func TestHasPhraseMatchesWholeTokens(t *testing.T) {
	l := Split("what is your phone number")
	if l.HasPhrase(Split("numb")) {
		t.Fatal("numb must not match inside number")
	}
	if !l.HasPhrase(Split("phone number")) {
		t.Fatal("expected token sequence to match")
	}
	if l.HasPhrase(Split("")) {
		t.Fatal("empty phrase must not match")
	}
}

func TestHasPhrasePrefix(t *testing.T) {
	l := Split("я думаю о самоубийстве")
	if !l.HasPhrasePrefix(Split("самоубийств")) {
		t.Fatal("expected stem to match the start of a token")
	}
	if Split("несамоубийство").HasPhrasePrefix(Split("самоубийств")) {
		t.Fatal("stem must not match in the middle of a token")
	}
}
