package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/alexv/vkminiapp/internal/model"
)

func newSampleRouter() http.Handler {
	h := NewSampleHandler()
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/api/data", h.GetData)
	r.Get("/api/items/{item_id}", h.GetItem)
	return r
}

func TestSampleHandler_GetData_ReturnsFixedPayload(t *testing.T) {
	router := newSampleRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeJSONBody(t, w)
	data := body["data"].(map[string]any)
	if data["total"] != float64(3) {
		t.Errorf("total = %v, want 3", data["total"])
	}
	if data["timestamp"] != "2024-01-01T00:00:00Z" {
		t.Errorf("timestamp = %v, want fixed timestamp", data["timestamp"])
	}
	items := data["data"].([]any)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	second := items[1].(map[string]any)
	if second["name"] != "Sample Item 2" || second["value"] != float64(200) {
		t.Errorf("items[1] = %v, want Sample Item 2 / 200", second)
	}
}

func TestSampleHandler_GetItem_DerivesFromID(t *testing.T) {
	router := newSampleRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/items/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeJSONBody(t, w)
	data := body["data"].(map[string]any)
	item := data["item"].(map[string]any)
	if item["id"] != float64(7) {
		t.Errorf("item.id = %v, want 7", item["id"])
	}
	if item["name"] != "Sample Item 7" {
		t.Errorf("item.name = %v, want Sample Item 7", item["name"])
	}
	if item["value"] != float64(700) {
		t.Errorf("item.value = %v, want 700", item["value"])
	}
}

func TestSampleHandler_GetItem_NonNumericID(t *testing.T) {
	router := newSampleRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/items/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	body := decodeJSONBody(t, w)
	if body["code"] != model.ErrCodeInvalidRequest {
		t.Errorf("code = %v, want %s", body["code"], model.ErrCodeInvalidRequest)
	}
}

func TestSampleHandler_Index_ReturnsHTML(t *testing.T) {
	router := newSampleRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "VK Mini App API") {
		t.Error("index page should contain the API title")
	}
	if !strings.Contains(w.Body.String(), "/api/auth/vk") {
		t.Error("index page should list the auth endpoint")
	}
}
