package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	logger  zerolog.Logger
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		logger:  logger,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/session", h.handleCreateSession)
	r.Post("/chat/message", h.handleSendMessage)
	r.Get("/chat/session/{sessionID}", h.handleGetSession)
}

type sendMessageRequest struct {
	Message   string `json:"message" validate:"required,max=4000"`
	SessionID string `json:"sessionId" validate:"required"`
	Language  string `json:"language,omitempty" validate:"max=16"`
}

type sendMessageResponse struct {
	Response         string `json:"response"`
	DetectedLanguage string `json:"detectedLanguage"`
	SessionID        string `json:"sessionId"`
	CrisisDetected   bool   `json:"crisisDetected,omitempty"`
}

// handleCreateSession 创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("create session failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{"sessionId": sessionID})
}

// handleSendMessage 处理用户消息并返回回复
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload sendMessageRequest
	if err := utils.DecodeAndValidate(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.chatSvc.SendMessage(r.Context(), chatService.SendRequest{
		SessionID: payload.SessionID,
		Message:   payload.Message,
		Language:  payload.Language,
	})
	if err != nil {
		h.respondServiceError(w, err, payload.SessionID)
		return
	}

	utils.RespondJSON(w, http.StatusOK, sendMessageResponse{
		Response:         result.Response,
		DetectedLanguage: result.DetectedLanguage,
		SessionID:        result.SessionID,
		CrisisDetected:   result.CrisisDetected,
	})
}

// handleGetSession 返回完整会话记录
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err, sessionID)
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error, sessionID string) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, chatService.ErrMessageRequired):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("chat request failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
	}
}
