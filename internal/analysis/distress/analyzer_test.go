package distress

import "testing"

func TestAnalyzeCrisisEnglish(t *testing.T) {
	a := Analyze("Sometimes I think I want to die")
	if a.Level != Crisis {
		t.Fatalf("expected crisis level, got %s", a.Level)
	}
	if !a.IsCrisis() {
		t.Fatal("expected IsCrisis to be true")
	}
	if a.Score < 3 {
		t.Fatalf("expected crisis score to be weighted, got %d", a.Score)
	}
}

func TestAnalyzeCrisisOutranksElevated(t *testing.T) {
	a := Analyze("我很孤独，有时候想死")
	if a.Level != Crisis {
		t.Fatalf("expected crisis level, got %s", a.Level)
	}
}

func TestAnalyzeElevatedSpanish(t *testing.T) {
	a := Analyze("Estoy muy triste y me siento sola")
	if a.Level != Elevated {
		t.Fatalf("expected elevated level, got %s", a.Level)
	}
	if len(a.Matches) < 2 {
		t.Fatalf("expected two matches, got %v", a.Matches)
	}
}

func TestAnalyzeNeutral(t *testing.T) {
	for _, text := range []string{"", "   ", "What a nice day"} {
		if a := Analyze(text); a.Level != None {
			t.Fatalf("Analyze(%q) = %s, want none", text, a.Level)
		}
	}
}

func TestAnalyzeIgnoresKeywordsInsideWords(t *testing.T) {
	for _, text := range []string{
		"what is your phone number",
		"je veux seulement parler",
		"I need some consolation",
		"I went solo on the hike",
		"想死你了",
		"我想死我了，好久不见",
	} {
		if a := Analyze(text); a.Level != None {
			t.Errorf("Analyze(%q) = %s %v, want none", text, a.Level, a.Matches)
		}
	}
}

func TestAnalyzeWholeWordsAndPhrases(t *testing.T) {
	cases := map[string]Level{
		"I feel numb":                        Elevated,
		"je suis seule ce soir":              Elevated,
		"I've been thinking about self-harm": Crisis,
		"I CAN’T GO ON like this":            Elevated,
		"I was panicking all night":          Elevated,
		"У меня депрессия":                   Elevated,
		"Я думаю о самоубийстве":             Crisis,
		"有时候真的想死":                            Crisis,
		"想死你了，但我还是想死":                        Crisis,
		"너무 외로워요":                            Elevated,
	}
	for text, want := range cases {
		if a := Analyze(text); a.Level != want {
			t.Errorf("Analyze(%q) = %s %v, want %s", text, a.Level, a.Matches, want)
		}
	}
}
