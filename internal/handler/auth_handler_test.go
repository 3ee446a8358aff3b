package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexv/vkminiapp/internal/model"
)

// --- モック定義 ---

type mockAuthService struct {
	authenticateFn func(ctx context.Context, profile *model.VKProfile) (*model.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, profile *model.VKProfile) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, profile)
	}
	return nil, nil
}

// decodeJSONBody はレスポンスボディを汎用マップに読み込む。
func decodeJSONBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func strPtr(s string) *string {
	return &s
}

// --- テスト ---

func TestAuthHandler_AuthVK_Success(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var gotProfile *model.VKProfile
	svc := &mockAuthService{
		authenticateFn: func(ctx context.Context, profile *model.VKProfile) (*model.User, error) {
			gotProfile = profile
			return &model.User{
				ID:        1,
				VKID:      profile.VKID,
				FirstName: profile.FirstName,
				LastName:  profile.LastName,
				Photo100:  profile.Photo100,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	reqBody := `{"id": 98765, "first_name": "Иван", "last_name": "Петров", "photo_100": "https://vk.com/p100.jpg", "access_token": "ignored-token"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/vk", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	h.AuthVK(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotProfile == nil {
		t.Fatal("expected service to be called")
	}
	if gotProfile.VKID != 98765 {
		t.Errorf("VKID = %d, want 98765", gotProfile.VKID)
	}
	if gotProfile.Photo200 != nil {
		t.Errorf("Photo200 = %v, want nil", *gotProfile.Photo200)
	}

	body := decodeJSONBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want object", body["data"])
	}
	if data["vk_id"] != float64(98765) {
		t.Errorf("data.vk_id = %v, want 98765", data["vk_id"])
	}
	if data["first_name"] != "Иван" {
		t.Errorf("data.first_name = %v, want Иван", data["first_name"])
	}
}

func TestAuthHandler_AuthVK_MissingRequiredField(t *testing.T) {
	called := false
	svc := &mockAuthService{
		authenticateFn: func(ctx context.Context, profile *model.VKProfile) (*model.User, error) {
			called = true
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	reqBody := `{"id": 98765, "last_name": "Петров"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/vk", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	h.AuthVK(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if called {
		t.Error("service should not be called on validation failure")
	}

	body := decodeJSONBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["code"] != model.ErrCodeValidation {
		t.Errorf("code = %v, want %s", body["code"], model.ErrCodeValidation)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "first_name") {
		t.Errorf("message = %q, should name the missing field", msg)
	}
}

func TestAuthHandler_AuthVK_MalformedJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/vk", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.AuthVK(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	body := decodeJSONBody(t, w)
	if body["code"] != model.ErrCodeInvalidRequest {
		t.Errorf("code = %v, want %s", body["code"], model.ErrCodeInvalidRequest)
	}
}

func TestAuthHandler_AuthVK_ServiceFault(t *testing.T) {
	svc := &mockAuthService{
		authenticateFn: func(ctx context.Context, profile *model.VKProfile) (*model.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewAuthHandler(svc)

	reqBody := `{"id": 1, "first_name": "A", "last_name": "B"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/vk", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	h.AuthVK(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	body := decodeJSONBody(t, w)
	if body["code"] != model.ErrCodeInternal {
		t.Errorf("code = %v, want %s", body["code"], model.ErrCodeInternal)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "connection refused") {
		t.Errorf("message = %q, should carry the fault description", msg)
	}
}
