package support

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/model/support"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler serves the crisis and support resource list.
type Handler struct {
	resources []support.Resource
}

// New creates a handler over a fixed resource list.
func New(resources []support.Resource) *Handler {
	return &Handler{resources: resources}
}

// RegisterRoutes 注册支持资源相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/support/resources", h.handleListResources)
}

// handleListResources accepts optional region and category query filters.
func (h *Handler) handleListResources(w http.ResponseWriter, r *http.Request) {
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	category := support.Category(strings.TrimSpace(r.URL.Query().Get("category")))

	utils.RespondJSON(w, http.StatusOK, support.Filter(h.resources, region, category))
}
