package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockStatusRecorder はHTTPStatusRecorderのモック。
type mockStatusRecorder struct {
	recorded []int
}

func (m *mockStatusRecorder) RecordHTTPStatus(statusCode int) {
	m.recorded = append(m.recorded, statusCode)
}

func TestMetricsMiddleware_RecordsStatusCode(t *testing.T) {
	rec := &mockStatusRecorder{}
	mw := NewMetricsMiddleware(rec)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/unknown/logs", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if len(rec.recorded) != 1 {
		t.Fatalf("recorded %d statuses, want 1", len(rec.recorded))
	}
	if rec.recorded[0] != http.StatusNotFound {
		t.Errorf("recorded status = %d, want %d", rec.recorded[0], http.StatusNotFound)
	}
}

func TestMetricsMiddleware_RecordsDefaultStatus(t *testing.T) {
	rec := &mockStatusRecorder{}
	mw := NewMetricsMiddleware(rec)

	// WriteHeader未呼び出しの場合は200として記録される
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if len(rec.recorded) != 1 {
		t.Fatalf("recorded %d statuses, want 1", len(rec.recorded))
	}
	if rec.recorded[0] != http.StatusOK {
		t.Errorf("recorded status = %d, want %d", rec.recorded[0], http.StatusOK)
	}
}
