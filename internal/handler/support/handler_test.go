package support

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/model/support"
)

func TestListResourcesFiltered(t *testing.T) {
	r := chi.NewRouter()
	New(support.Seed()).RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/support/resources?region=us&category=crisis", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var items []support.Resource
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected crisis resources for the US")
	}
	for _, item := range items {
		if item.Category != support.CategoryCrisis {
			t.Fatalf("unexpected category %s", item.Category)
		}
	}
}
