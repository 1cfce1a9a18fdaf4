package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/handler/chat"
	"github.com/zhouzirui/solace/backend/internal/handler/language"
	"github.com/zhouzirui/solace/backend/internal/handler/support"
	"github.com/zhouzirui/solace/backend/internal/handler/ws"
	middlewarePkg "github.com/zhouzirui/solace/backend/internal/middleware"
	languageModel "github.com/zhouzirui/solace/backend/internal/model/language"
	supportModel "github.com/zhouzirui/solace/backend/internal/model/support"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// requestTimeout bounds REST handlers. It sits above the AI provider timeout
// so a slow provider still ends in a fallback reply rather than a 504.
const requestTimeout = 60 * time.Second

// NewRouter wires HTTP routes to core services. Websocket connections are
// closed when ctx is done.
func NewRouter(ctx context.Context, logger zerolog.Logger, allowedOrigins []string, languages languageModel.Store, resources []supportModel.Resource, chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewarePkg.Metrics)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	// Create handlers
	languageHandler := language.New(languages)
	supportHandler := support.New(resources)
	chatHandler := chat.New(chatSvc, logger)
	wsHandler := ws.New(ctx, chatSvc, allowedOrigins, logger)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		// Websocket connections are long-lived and stay outside the timeout group.
		wsHandler.RegisterRoutes(api)

		api.Group(func(rest chi.Router) {
			rest.Use(middleware.Timeout(requestTimeout))

			languageHandler.RegisterRoutes(rest)
			supportHandler.RegisterRoutes(rest)
			chatHandler.RegisterRoutes(rest)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "solace-backend",
	})
}
