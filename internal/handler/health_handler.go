package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/fitlog/internal/middleware"
)

// HealthChecker はDB疎通確認のためのインターフェース。
// *sql.DBが実装する。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// HealthHandler はヘルスチェックのHTTPハンドラー。
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{
		checker: checker,
	}
}

// Check はDB疎通を確認してヘルス状態を返す。
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.PingContext(r.Context()); err != nil {
		middleware.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
