package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fitlog/internal/exerciselog"
)

// LogServiceInterface はログ取得ハンドラーが必要とするサービスインターフェース。
type LogServiceInterface interface {
	// GetLogs はユーザーの運動ログを取得する。
	// from/to/limitは未検証のクエリ文字列として受け取り、サービス層で解釈する。
	GetLogs(ctx context.Context, userID, fromStr, toStr, limitStr string) (*exerciselog.Envelope, error)
}

// LogHandler は運動ログ取得のHTTPハンドラー。
type LogHandler struct {
	service LogServiceInterface
}

// NewLogHandler はLogHandlerを生成する。
func NewLogHandler(service LogServiceInterface) *LogHandler {
	return &LogHandler{
		service: service,
	}
}

// GetLogs はユーザーの運動ログを取得する。
// GET /api/users/{id}/logs?from=&to=&limit=
func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	query := r.URL.Query()
	envelope, err := h.service.GetLogs(
		r.Context(), userID,
		query.Get("from"), query.Get("to"), query.Get("limit"),
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, envelope)
}
