package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/analysis/langdetect"
	"github.com/zhouzirui/solace/backend/internal/metrics"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/internal/service/ai"
)

var ErrMessageRequired = errors.New("message is required")

// ReplyGenerator produces the assistant turn for a user message.
type ReplyGenerator interface {
	Reply(ctx context.Context, message, lang string) ai.Reply
}

// SendRequest is one user turn.
type SendRequest struct {
	SessionID string
	Message   string
	Language  string // optional hint, wins over detection
}

// SendResult is returned to the caller after the reply has been recorded.
type SendResult struct {
	Response         string
	DetectedLanguage string
	SessionID        string
	CrisisDetected   bool
}

// Service orchestrates detection, transcript updates and reply generation.
type Service struct {
	store     *Store
	generator ReplyGenerator
	languages language.Store
	detect    func(string) string
	locks     *keyedMutex
	logger    zerolog.Logger
}

// NewService wires the chat service.
func NewService(store *Store, generator ReplyGenerator, languages language.Store, logger zerolog.Logger) *Service {
	if languages == nil {
		languages = language.NewMemoryStore(language.Seed())
	}
	return &Service{
		store:     store,
		generator: generator,
		languages: languages,
		detect:    langdetect.Detect,
		locks:     newKeyedMutex(),
		logger:    logger,
	}
}

// CreateSession provisions an anonymous session and returns its id.
func (s *Service) CreateSession(ctx context.Context) (string, error) {
	session, err := s.store.CreateSession(ctx)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	s.logger.Debug().Str("session_id", session.ID).Msg("session created")
	return session.ID, nil
}

// GetSession returns a snapshot of the session transcript.
func (s *Service) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	return s.store.GetSession(ctx, sessionID)
}

// SendMessage records the user turn, generates a reply and records it too.
// Calls for the same session run one at a time so each user/reply pair stays
// adjacent in the transcript.
func (s *Service) SendMessage(ctx context.Context, req SendRequest) (SendResult, error) {
	unlock := s.locks.Lock(req.SessionID)
	defer unlock()

	if err := s.store.Exists(ctx, req.SessionID); err != nil {
		return SendResult{}, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return SendResult{}, ErrMessageRequired
	}

	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if lang == "" {
		lang = s.detect(req.Message)
	}

	userMsg := chat.Message{Content: req.Message, IsUser: true, Language: lang}
	if err := s.store.AddMessage(ctx, req.SessionID, userMsg); err != nil {
		return SendResult{}, fmt.Errorf("append user message: %w", err)
	}
	if err := s.store.UpdateLanguage(ctx, req.SessionID, lang); err != nil {
		return SendResult{}, fmt.Errorf("update session language: %w", err)
	}

	_, known := s.languages.FindByCode(lang)
	metrics.MessagesReceived.WithLabelValues(metrics.LanguageLabel(lang, known)).Inc()

	reply := s.generator.Reply(ctx, req.Message, lang)
	if reply.Assessment.IsCrisis() {
		metrics.CrisisMessages.Inc()
		s.logger.Warn().Str("session_id", req.SessionID).Str("language", lang).Msg("crisis language detected")
	}

	aiMsg := chat.Message{Content: reply.Text, IsUser: false, Language: lang}
	if err := s.store.AddMessage(ctx, req.SessionID, aiMsg); err != nil {
		return SendResult{}, fmt.Errorf("append reply: %w", err)
	}

	s.logger.Debug().
		Str("session_id", req.SessionID).
		Str("language", lang).
		Bool("fallback", reply.Fallback).
		Str("outcome", reply.Outcome).
		Int("length", len(reply.Text)).
		Msg("reply generated")

	return SendResult{
		Response:         reply.Text,
		DetectedLanguage: lang,
		SessionID:        req.SessionID,
		CrisisDetected:   reply.Assessment.IsCrisis(),
	}, nil
}
