package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hitoshi/fitlog/internal/model"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// CreateUser は新規ユーザーを作成する。
	CreateUser(ctx context.Context, username string) (*model.User, error)
	// ListUsers は全ユーザーを作成順で返す。
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// UserHandler はユーザー管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// createUserRequest はユーザー作成リクエストのボディ。
type createUserRequest struct {
	Username string `json:"username"`
}

// userResponse はユーザー情報のAPIレスポンス。
// 互換性のためIDは "_id" として返す。
type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// CreateUser は新規ユーザーを作成する。
// POST /api/users
// JSONボディとフォームエンコードの両方を受け付ける。
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	username, ok := parseUsername(w, r)
	if !ok {
		return
	}

	user, err := h.service.CreateUser(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toUserResponse(user))
}

// ListUsers は全ユーザーを取得する。
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// ユーザーが0件でも空配列を返す
	results := make([]userResponse, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResponse(u))
	}

	writeJSONResponse(w, http.StatusOK, results)
}

// parseUsername はJSONまたはフォームエンコードのボディからusernameを取り出す。
// 解析に失敗した場合はエラーレスポンスを書き込み、falseを返す。
func parseUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	if isJSONRequest(r) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
			return "", false
		}
		return req.Username, true
	}

	if err := r.ParseForm(); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return "", false
	}
	return r.PostFormValue("username"), true
}

// isJSONRequest はContent-TypeがJSONかどうかを判定する。
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}

// toUserResponse はmodel.UserからAPIレスポンスに変換する。
func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// writeJSONResponse はJSONレスポンスを書き込む。
func writeJSONResponse(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
