package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fitlog/internal/exerciselog"
	"github.com/hitoshi/fitlog/internal/model"
)

// ExerciseServiceInterface は運動記録ハンドラーが必要とするサービスインターフェース。
type ExerciseServiceInterface interface {
	// CreateExercise は運動記録を作成する。
	// durationStrとdateStrは未検証の文字列として受け取り、サービス層で検証する。
	CreateExercise(ctx context.Context, userID, description, durationStr, dateStr string) (*model.Exercise, *model.User, error)
}

// ExerciseHandler は運動記録のHTTPハンドラー。
type ExerciseHandler struct {
	service ExerciseServiceInterface
}

// NewExerciseHandler はExerciseHandlerを生成する。
func NewExerciseHandler(service ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
	}
}

// durationValue はJSONの数値・文字列のどちらで渡されても文字列として受け取る型。
// durationの検証（正の整数チェック）はサービス層で行うため、ここでは形を問わない。
type durationValue string

// UnmarshalJSON はJSON数値と文字列の両方を受け付ける。
func (d *durationValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		*d = durationValue(unquoted)
		return nil
	}
	*d = durationValue(s)
	return nil
}

// createExerciseRequest は運動記録作成リクエストのボディ。
type createExerciseRequest struct {
	Description string        `json:"description"`
	Duration    durationValue `json:"duration"`
	Date        string        `json:"date"`
}

// exerciseResponse は運動記録作成のAPIレスポンス。
// 互換性のため、_idとusernameは記録の所有者（ユーザー）の情報を返す。
type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// CreateExercise は運動記録を作成する。
// POST /api/users/{id}/exercises
// JSONボディとフォームエンコードの両方を受け付ける。
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	req, ok := parseCreateExerciseRequest(w, r)
	if !ok {
		return
	}

	exercise, user, err := h.service.CreateExercise(
		r.Context(), userID, req.Description, string(req.Duration), req.Date,
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, exerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exerciselog.FormatDate(exercise.Date),
	})
}

// parseCreateExerciseRequest はJSONまたはフォームエンコードのボディから
// 運動記録作成リクエストを取り出す。
// 解析に失敗した場合はエラーレスポンスを書き込み、falseを返す。
func parseCreateExerciseRequest(w http.ResponseWriter, r *http.Request) (createExerciseRequest, bool) {
	var req createExerciseRequest

	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
			return req, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return req, false
	}
	req.Description = r.PostFormValue("description")
	req.Duration = durationValue(r.PostFormValue("duration"))
	req.Date = r.PostFormValue("date")
	return req, true
}
