package ai

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/analysis/distress"
	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/internal/service/fallback"
)

type providerFunc func(ctx context.Context, system, message string) (string, error)

func (f providerFunc) Complete(ctx context.Context, system, message string) (string, error) {
	return f(ctx, system, message)
}

func newTestGenerator(p Provider, timeout time.Duration) (*Generator, *fallback.Catalog) {
	catalog := fallback.NewCatalog(nil)
	gen := NewGenerator(p, catalog, language.NewMemoryStore(language.Seed()), GeneratorConfig{
		Timeout: timeout,
		Logger:  zerolog.Nop(),
	})
	return gen, catalog
}

func TestGeneratorReturnsTrimmedProviderReply(t *testing.T) {
	var gotSystem, gotMessage string
	gen, _ := newTestGenerator(providerFunc(func(_ context.Context, system, message string) (string, error) {
		gotSystem, gotMessage = system, message
		return "  Eso suena muy difícil. ¿Quieres contarme qué pasó hoy?  \n", nil
	}), time.Second)

	reply := gen.Reply(context.Background(), "Estoy muy triste", "es")
	if reply.Fallback {
		t.Fatal("expected provider reply, got fallback")
	}
	if reply.Text != "Eso suena muy difícil. ¿Quieres contarme qué pasó hoy?" {
		t.Fatalf("unexpected reply %q", reply.Text)
	}
	if !strings.Contains(gotSystem, "exclusively in Spanish") {
		t.Fatalf("system prompt should name the language, got %q", gotSystem)
	}
	if gotMessage != "Estoy muy triste" {
		t.Fatalf("unexpected user message %q", gotMessage)
	}
}

func TestGeneratorFallsBackOnFailures(t *testing.T) {
	cases := map[string]Provider{
		"error": providerFunc(func(context.Context, string, string) (string, error) {
			return "", errors.New("inference api status 500")
		}),
		"empty": providerFunc(func(context.Context, string, string) (string, error) {
			return "   ", nil
		}),
		"short": providerFunc(func(context.Context, string, string) (string, error) {
			return "ok.", nil
		}),
		"refusal": providerFunc(func(context.Context, string, string) (string, error) {
			return "I don't think I can help you with that request at all.", nil
		}),
		"as an ai": providerFunc(func(context.Context, string, string) (string, error) {
			return "As an AI language model I cannot have feelings, but here we go.", nil
		}),
		"panic": providerFunc(func(context.Context, string, string) (string, error) {
			panic("boom")
		}),
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			gen, catalog := newTestGenerator(p, time.Second)
			reply := gen.Reply(context.Background(), "hola", "fr")
			if !reply.Fallback {
				t.Fatalf("expected fallback, got %q", reply.Text)
			}
			if !slices.Contains(catalog.Candidates("fr"), reply.Text) {
				t.Fatalf("reply %q is not a french fallback", reply.Text)
			}
		})
	}
}

func TestGeneratorTimeoutFallsBack(t *testing.T) {
	gen, catalog := newTestGenerator(providerFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), 20*time.Millisecond)

	start := time.Now()
	reply := gen.Reply(context.Background(), "hello", "de")
	if time.Since(start) > 2*time.Second {
		t.Fatal("provider call was not bounded by the timeout")
	}
	if reply.Outcome != OutcomeTimeout {
		t.Fatalf("expected timeout outcome, got %s", reply.Outcome)
	}
	if !slices.Contains(catalog.Candidates("de"), reply.Text) {
		t.Fatalf("reply %q is not a german fallback", reply.Text)
	}
}

func TestGeneratorLateSuccessAfterDeadlineFallsBack(t *testing.T) {
	gen, _ := newTestGenerator(providerFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "A partial answer that arrived after the deadline passed.", nil
	}), 10*time.Millisecond)

	if reply := gen.Reply(context.Background(), "hello", "en"); !reply.Fallback {
		t.Fatalf("expected fallback, got %q", reply.Text)
	}
}

func TestGeneratorUncoveredLanguageUsesEnglish(t *testing.T) {
	gen, catalog := newTestGenerator(nil, time.Second)

	got := gen.Generate(context.Background(), "मी खूप दुःखी आहे", "mr")
	if !slices.Contains(catalog.Candidates(fallback.DefaultLanguage), got) {
		t.Fatalf("expected english fallback for marathi, got %q", got)
	}
}

func TestGeneratorNilProviderNeverEmpty(t *testing.T) {
	gen, _ := newTestGenerator(nil, time.Second)
	for _, lang := range []string{"en", "es", "zh", "", "xx"} {
		reply := gen.Reply(context.Background(), "hi", lang)
		if strings.TrimSpace(reply.Text) == "" {
			t.Fatalf("empty reply for %q", lang)
		}
		if reply.Outcome != OutcomeDisabled {
			t.Fatalf("expected disabled outcome, got %s", reply.Outcome)
		}
	}
}

func TestGeneratorCrisisPromptAndAssessment(t *testing.T) {
	var gotSystem string
	gen, _ := newTestGenerator(providerFunc(func(_ context.Context, system, _ string) (string, error) {
		gotSystem = system
		return "I'm really glad you told me. Are you safe right now?", nil
	}), time.Second)

	reply := gen.Reply(context.Background(), "I want to die", "en")
	if reply.Assessment.Level != distress.Crisis {
		t.Fatalf("expected crisis assessment, got %s", reply.Assessment.Level)
	}
	if !strings.Contains(gotSystem, "crisis line") {
		t.Fatalf("crisis guidance missing from prompt: %q", gotSystem)
	}
}

func TestRejectReason(t *testing.T) {
	if r := rejectReason("That sounds exhausting, tell me more about it."); r != "" {
		t.Fatalf("expected acceptable reply, got %q", r)
	}
	// 19 runes of CJK text is still too short even though it is many bytes.
	if r := rejectReason(strings.Repeat("好", MinReplyRunes-1)); r == "" {
		t.Fatal("expected short CJK reply to be rejected")
	}
	if r := rejectReason(strings.Repeat("好", MinReplyRunes)); r != "" {
		t.Fatalf("expected CJK reply at the threshold to pass, got %q", r)
	}
}
