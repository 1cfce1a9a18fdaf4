package chat_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/analysis/distress"
	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/internal/service/ai"
	chat "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/fallback"
)

type stubGenerator struct {
	mu    sync.Mutex
	calls []string
	delay time.Duration
}

func (g *stubGenerator) Reply(_ context.Context, message, lang string) ai.Reply {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	g.mu.Lock()
	g.calls = append(g.calls, lang)
	g.mu.Unlock()
	return ai.Reply{Text: "reply to " + message, Assessment: distress.Analyze(message)}
}

func newService(gen chat.ReplyGenerator) (*chat.Service, *chat.Store) {
	store := chat.NewStore(chat.StoreConfig{})
	return chat.NewService(store, gen, language.NewMemoryStore(language.Seed()), zerolog.Nop()), store
}

func TestServiceGetSession(t *testing.T) {
	svc, _ := newService(&stubGenerator{})
	ctx := context.Background()

	id, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.ID != id {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, id)
	}
	if len(got.Messages) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(got.Messages))
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	if _, err := svc.GetSession(context.Background(), "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServiceSendMessageUnknownSession(t *testing.T) {
	gen := &stubGenerator{}
	svc, store := newService(gen)

	_, err := svc.SendMessage(context.Background(), chat.SendRequest{SessionID: "missing", Message: "hello"})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("unknown session must not create state")
	}
	if len(gen.calls) != 0 {
		t.Fatal("generator must not run for an unknown session")
	}
}

func TestServiceSendMessageBlank(t *testing.T) {
	svc, _ := newService(&stubGenerator{})
	id, _ := svc.CreateSession(context.Background())

	_, err := svc.SendMessage(context.Background(), chat.SendRequest{SessionID: id, Message: "  \n"})
	if !errors.Is(err, chat.ErrMessageRequired) {
		t.Fatalf("expected ErrMessageRequired, got %v", err)
	}
	session, _ := svc.GetSession(context.Background(), id)
	if len(session.Messages) != 0 {
		t.Fatal("blank message must not be recorded")
	}
}

func TestServiceSendMessageBlankToUnknownSession(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	_, err := svc.SendMessage(context.Background(), chat.SendRequest{SessionID: "missing", Message: "   "})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServiceTranscriptOrder(t *testing.T) {
	svc, _ := newService(&stubGenerator{})
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	for _, text := range []string{"first", "second"} {
		if _, err := svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: text}); err != nil {
			t.Fatalf("SendMessage(%q) err: %v", text, err)
		}
	}

	session, _ := svc.GetSession(ctx, id)
	if len(session.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(session.Messages))
	}
	want := []struct {
		content string
		isUser  bool
	}{
		{"first", true}, {"reply to first", false}, {"second", true}, {"reply to second", false},
	}
	for i, w := range want {
		got := session.Messages[i]
		if got.Content != w.content || got.IsUser != w.isUser {
			t.Fatalf("message %d = {%q, %v}, want {%q, %v}", i, got.Content, got.IsUser, w.content, w.isUser)
		}
	}
}

func TestServiceSpanishEndToEnd(t *testing.T) {
	catalog := fallback.NewCatalog(nil)
	languages := language.NewMemoryStore(language.Seed())
	gen := ai.NewGenerator(nil, catalog, languages, ai.GeneratorConfig{Logger: zerolog.Nop()})
	svc := chat.NewService(chat.NewStore(chat.StoreConfig{}), gen, languages, zerolog.Nop())
	ctx := context.Background()

	id, _ := svc.CreateSession(ctx)
	res, err := svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: "Estoy muy triste"})
	if err != nil {
		t.Fatalf("SendMessage err: %v", err)
	}
	if res.DetectedLanguage != "es" {
		t.Fatalf("detected %q, want es", res.DetectedLanguage)
	}
	if res.Response == "" || !slices.Contains(catalog.Candidates("es"), res.Response) {
		t.Fatalf("unexpected response %q", res.Response)
	}
	if res.SessionID != id {
		t.Fatalf("unexpected session id %q", res.SessionID)
	}

	session, _ := svc.GetSession(ctx, id)
	if len(session.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(session.Messages))
	}
	if m := session.Messages[0]; !m.IsUser || m.Language != "es" {
		t.Fatalf("unexpected user message %+v", m)
	}
	if m := session.Messages[1]; m.IsUser || m.Language != "es" {
		t.Fatalf("unexpected reply message %+v", m)
	}
	if session.DetectedLanguage != "es" {
		t.Fatalf("session language = %q, want es", session.DetectedLanguage)
	}
}

func TestServiceLanguageHintWins(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newService(gen)
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	res, err := svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: "I had a really long day", Language: "fr"})
	if err != nil {
		t.Fatalf("SendMessage err: %v", err)
	}
	if res.DetectedLanguage != "fr" {
		t.Fatalf("detected %q, want fr", res.DetectedLanguage)
	}
	if len(gen.calls) != 1 || gen.calls[0] != "fr" {
		t.Fatalf("generator should receive the hint, got %v", gen.calls)
	}
}

func TestServiceSessionLanguageFollowsLatestMessage(t *testing.T) {
	svc, _ := newService(&stubGenerator{})
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	_, _ = svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: "Estoy muy triste"})
	_, _ = svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: "我今天很累"})

	session, _ := svc.GetSession(ctx, id)
	if session.DetectedLanguage != "zh" {
		t.Fatalf("session language = %q, want zh", session.DetectedLanguage)
	}
}

func TestServiceCrisisFlag(t *testing.T) {
	svc, _ := newService(&stubGenerator{})
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	res, err := svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: "I want to end my life"})
	if err != nil {
		t.Fatalf("SendMessage err: %v", err)
	}
	if !res.CrisisDetected {
		t.Fatal("expected crisis flag")
	}
}

func TestServiceConcurrentSendsStayPaired(t *testing.T) {
	svc, _ := newService(&stubGenerator{delay: 2 * time.Millisecond})
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := string(rune('a'+i)) + " message"
			if _, err := svc.SendMessage(ctx, chat.SendRequest{SessionID: id, Message: msg}); err != nil {
				t.Errorf("SendMessage err: %v", err)
			}
		}(i)
	}
	wg.Wait()

	session, _ := svc.GetSession(ctx, id)
	if len(session.Messages) != 2*n {
		t.Fatalf("expected %d messages, got %d", 2*n, len(session.Messages))
	}
	for i := 0; i < len(session.Messages); i += 2 {
		user, reply := session.Messages[i], session.Messages[i+1]
		if !user.IsUser || reply.IsUser || reply.Content != "reply to "+user.Content {
			t.Fatalf("pair %d interleaved: %+v / %+v", i/2, user, reply)
		}
	}
}
