package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler language服务的HTTP处理器
type Handler struct {
	languages language.Store
}

// New 创建language处理器
func New(languages language.Store) *Handler {
	return &Handler{
		languages: languages,
	}
}

// RegisterRoutes 注册language相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.handleListLanguages)
	r.Get("/languages/{code}", h.handleGetLanguage)
}

// handleListLanguages 列出所有支持的语言
func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.languages.List())
}

func (h *Handler) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.languages.FindByCode(chi.URLParam(r, "code"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "language not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lang)
}
