package ws

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/metrics"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 16 << 10

	maxMessageRunes  = 4000
	maxLanguageRunes = 16
)

// Frame types.
const (
	TypeMessage = "message"
	TypeReady   = "ready"
	TypeReply   = "reply"
	TypeError   = "error"
)

// Handler WebSocket聊天处理器
type Handler struct {
	baseCtx  context.Context
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// New 创建WebSocket处理器. allowedOrigins follows the CORS setting; "*"
// accepts any origin. Open connections are closed with "going away" once ctx
// is done, since http.Server.Shutdown leaves hijacked connections alone.
func New(ctx context.Context, chatSvc *chatService.Service, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		baseCtx: ctx,
		chatSvc: chatSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ReplyData is the payload of a reply frame.
type ReplyData struct {
	Response         string `json:"response"`
	DetectedLanguage string `json:"detectedLanguage"`
	CrisisDetected   bool   `json:"crisisDetected,omitempty"`
}

// conn serialises writes; gorilla allows one concurrent writer.
type conn struct {
	mu        sync.Mutex
	ws        *websocket.Conn
	sessionID string
	logger    zerolog.Logger
}

func (c *conn) send(frameType string, data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	err := c.ws.WriteJSON(outgoingMessage{
		Type:      frameType,
		SessionID: c.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("type", frameType).Msg("websocket write failed")
	}
	return err
}

func (c *conn) sendError(message string) {
	_ = c.send(TypeError, map[string]string{"message": message})
}

func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// goAway tells the peer the server is stopping and drops the connection,
// which also unblocks the read loop.
func (c *conn) goAway() {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = c.ws.Close()
}

// handleWebSocket 处理WebSocket连接
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("websocket session lookup failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to open connection")
		return
	}

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer wsConn.Close()

	metrics.WebsocketConnections.Inc()
	defer metrics.WebsocketConnections.Dec()

	c := &conn{ws: wsConn, sessionID: sessionID, logger: h.logger}
	h.logger.Info().Str("session_id", sessionID).Msg("websocket connected")

	// Derived from the server lifetime rather than the request.
	ctx, cancel := context.WithCancel(h.baseCtx)
	defer cancel()

	wsConn.SetReadLimit(maxMessageSize)
	_ = wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		return wsConn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go h.pingLoop(ctx, c)

	if err := c.send(TypeReady, map[string]string{"detectedLanguage": session.DetectedLanguage}); err != nil {
		return
	}

	for {
		var msg inboundMessage
		if err := wsConn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).Str("session_id", sessionID).Msg("websocket read ended")
			}
			return
		}
		_ = wsConn.SetReadDeadline(time.Now().Add(pongWait))

		if stop := h.handleMessage(ctx, c, msg); stop {
			return
		}
	}
}

// handleMessage processes one inbound frame and reports whether the
// connection should be closed.
func (h *Handler) handleMessage(ctx context.Context, c *conn, msg inboundMessage) bool {
	if msg.Type != TypeMessage {
		c.sendError("unsupported message type: " + msg.Type)
		return false
	}
	if strings.TrimSpace(msg.Message) == "" {
		c.sendError(chatService.ErrMessageRequired.Error())
		return false
	}
	if utf8.RuneCountInString(msg.Message) > maxMessageRunes {
		c.sendError("message must be at most 4000 characters")
		return false
	}
	if utf8.RuneCountInString(msg.Language) > maxLanguageRunes {
		c.sendError("language must be at most 16 characters")
		return false
	}

	result, err := h.chatSvc.SendMessage(ctx, chatService.SendRequest{
		SessionID: c.sessionID,
		Message:   msg.Message,
		Language:  msg.Language,
	})
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			c.sendError("session not found")
			return true
		}
		h.logger.Error().Err(err).Str("session_id", c.sessionID).Msg("websocket message failed")
		c.sendError("failed to process message")
		return false
	}

	return c.send(TypeReply, ReplyData{
		Response:         result.Response,
		DetectedLanguage: result.DetectedLanguage,
		CrisisDetected:   result.CrisisDetected,
	}) != nil
}

// pingLoop 定期发送ping消息
func (h *Handler) pingLoop(ctx context.Context, c *conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if h.baseCtx.Err() != nil {
				h.logger.Debug().Str("session_id", c.sessionID).Msg("closing websocket for shutdown")
				c.goAway()
			}
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
