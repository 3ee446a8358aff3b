package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type recordedRequest struct {
	method     string
	statusCode int
	duration   time.Duration
}

type mockHTTPMetricsRecorder struct {
	requests []recordedRequest
}

func (m *mockHTTPMetricsRecorder) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	m.requests = append(m.requests, recordedRequest{method, statusCode, duration})
}

// メソッドとステータスコードが記録されることを検証
func TestMetricsMiddleware_RecordsMethodAndStatus(t *testing.T) {
	recorder := &mockHTTPMetricsRecorder{}
	handler := NewMetricsMiddleware(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/addresses/999", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(recorder.requests) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(recorder.requests))
	}
	got := recorder.requests[0]
	if got.method != http.MethodDelete {
		t.Errorf("method = %q, want %q", got.method, http.MethodDelete)
	}
	if got.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want %d", got.statusCode, http.StatusNotFound)
	}
}

// WriteHeaderを呼ばないハンドラーでは200として記録されることを検証
func TestMetricsMiddleware_DefaultsTo200(t *testing.T) {
	recorder := &mockHTTPMetricsRecorder{}
	handler := NewMetricsMiddleware(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(recorder.requests) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(recorder.requests))
	}
	if recorder.requests[0].statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want %d", recorder.requests[0].statusCode, http.StatusOK)
	}
}
