// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// ハンドラー層がHTTPステータスコードへ決定的にマッピングできるよう、
// エラーコードとユーザー向けメッセージを保持する。
type APIError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUsernameRequired = "USERNAME_REQUIRED"
	ErrCodeFieldsMissing    = "REQUIRED_FIELDS_MISSING"
	ErrCodeInvalidDuration  = "INVALID_DURATION"
	ErrCodeInvalidDate      = "INVALID_DATE"
	ErrCodeInvalidFromDate  = "INVALID_FROM_DATE"
	ErrCodeInvalidToDate    = "INVALID_TO_DATE"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
)

// NewUsernameRequiredError はusername未指定エラーを生成する。
func NewUsernameRequiredError() *APIError {
	return &APIError{
		Code:    ErrCodeUsernameRequired,
		Message: "username is required",
	}
}

// NewFieldsMissingError は必須フィールド欠落エラーを生成する。
func NewFieldsMissingError(fields string) *APIError {
	return &APIError{
		Code:    ErrCodeFieldsMissing,
		Message: fmt.Sprintf("required fields missing: %s", fields),
	}
}

// NewInvalidDurationError はduration不正エラーを生成する。
// durationは正の整数（分）でなければならない。
func NewInvalidDurationError(value string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidDuration,
		Message: fmt.Sprintf("duration must be a positive integer: %q", value),
	}
}

// NewInvalidDateError は運動記録のdate不正エラーを生成する。
func NewInvalidDateError(value string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidDate,
		Message: fmt.Sprintf("invalid date: %q", value),
	}
}

// NewInvalidFromDateError はログ取得のfromパラメータ不正エラーを生成する。
func NewInvalidFromDateError(value string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidFromDate,
		Message: fmt.Sprintf("invalid from date: %q", value),
	}
}

// NewInvalidToDateError はログ取得のtoパラメータ不正エラーを生成する。
func NewInvalidToDateError(value string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidToDate,
		Message: fmt.Sprintf("invalid to date: %q", value),
	}
}

// NewUserNotFoundError は指定IDのユーザーが存在しない場合のエラーを生成する。
func NewUserNotFoundError(userID string) *APIError {
	return &APIError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("user not found: %s", userID),
	}
}

// NewInvalidRequestError はリクエストボディ解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidRequest,
		Message: "failed to parse request body",
	}
}
