package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/analysis/distress"
	"github.com/zhouzirui/solace/backend/internal/metrics"
	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/internal/service/fallback"
)

// MinReplyRunes is the shortest provider reply accepted as-is.
const MinReplyRunes = 20

// DefaultTimeout bounds a provider call when none is configured.
const DefaultTimeout = 20 * time.Second

var refusalMarkers = []string{"i don't", "i don’t", "as an ai"}

// Provider outcomes, used as metric labels and log fields.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
	OutcomeRejected = "rejected"
	OutcomeDisabled = "disabled"
)

// Reply is a generated answer together with how it was produced.
type Reply struct {
	Text       string
	Fallback   bool
	Outcome    string
	Assessment distress.Assessment
}

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Generator asks the provider for a reply and substitutes a catalogue reply
// whenever the provider fails or answers poorly. It never returns an error.
type Generator struct {
	provider  Provider
	catalog   *fallback.Catalog
	prompts   *PromptBuilder
	languages language.Store
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewGenerator wires a generator. provider may be nil, in which case every
// reply comes from the catalogue.
func NewGenerator(provider Provider, catalog *fallback.Catalog, languages language.Store, cfg GeneratorConfig) *Generator {
	if catalog == nil {
		catalog = fallback.NewCatalog(nil)
	}
	if languages == nil {
		languages = language.NewMemoryStore(language.Seed())
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		provider:  provider,
		catalog:   catalog,
		prompts:   NewPromptBuilder(languages),
		languages: languages,
		timeout:   timeout,
		logger:    cfg.Logger,
	}
}

// Generate returns a non-empty reply to message in lang.
func (g *Generator) Generate(ctx context.Context, message, lang string) string {
	return g.Reply(ctx, message, lang).Text
}

// Reply is Generate with the distress assessment and provenance attached.
func (g *Generator) Reply(ctx context.Context, message, lang string) Reply {
	assessment := distress.Analyze(message)

	if g.provider == nil {
		return g.fallback(lang, assessment, OutcomeDisabled, nil)
	}

	system := g.prompts.Build(lang, assessment)

	start := time.Now()
	text, err := g.complete(ctx, system, message)
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = OutcomeTimeout
		}
		return g.fallback(lang, assessment, outcome, err)
	}

	text = strings.TrimSpace(text)
	if reason := rejectReason(text); reason != "" {
		return g.fallback(lang, assessment, OutcomeRejected, errors.New(reason))
	}

	metrics.ProviderRequests.WithLabelValues(OutcomeOK).Inc()
	return Reply{Text: text, Outcome: OutcomeOK, Assessment: assessment}
}

func (g *Generator) complete(ctx context.Context, system, message string) (text string, err error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	text, err = g.provider.Complete(callCtx, system, message)
	if err == nil && callCtx.Err() != nil {
		// Some providers return partial text when the deadline hits.
		err = callCtx.Err()
	}
	return text, err
}

func (g *Generator) fallback(lang string, assessment distress.Assessment, outcome string, cause error) Reply {
	if outcome != OutcomeDisabled {
		metrics.ProviderRequests.WithLabelValues(outcome).Inc()
		g.logger.Warn().
			Err(cause).
			Str("language", lang).
			Str("reason", outcome).
			Msg("ai provider unavailable, using fallback reply")
	}

	_, known := g.languages.FindByCode(lang)
	metrics.FallbackReplies.WithLabelValues(metrics.LanguageLabel(strings.ToLower(lang), known)).Inc()

	return Reply{
		Text:       g.catalog.Pick(lang),
		Fallback:   true,
		Outcome:    outcome,
		Assessment: assessment,
	}
}

// rejectReason explains why a reply is unusable, or returns "" when it is fine.
func rejectReason(text string) string {
	if text == "" {
		return "empty completion"
	}
	if utf8.RuneCountInString(text) < MinReplyRunes {
		return "completion too short"
	}
	lower := strings.ToLower(text)
	for _, marker := range refusalMarkers {
		if strings.Contains(lower, marker) {
			return "completion contains refusal marker"
		}
	}
	return ""
}
