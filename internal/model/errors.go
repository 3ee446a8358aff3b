// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// *APIErrorはクライアント起因の結果（not found、バリデーション）を表し、
// それ以外のerrorはデータアクセス障害としてハンドラー層で500に変換される。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, user, address, system
	Action   string // クライアント向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUserNotFound    = "USER_NOT_FOUND"
	ErrCodeAddressNotFound = "ADDRESS_NOT_FOUND"
	ErrCodeInvalidRequest  = "INVALID_REQUEST"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// NewUserNotFoundError はユーザー未検出エラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "User not found",
		Category: "user",
		Action:   "Check the vk_id and try again.",
	}
}

// NewAddressNotFoundError は住所未検出エラーを生成する。
func NewAddressNotFoundError(addressID int64) *APIError {
	return &APIError{
		Code:     ErrCodeAddressNotFound,
		Message:  "Address not found",
		Category: "address",
		Action:   fmt.Sprintf("Check that address %d exists.", addressID),
	}
}

// NewInvalidRequestError はリクエスト解析失敗エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("Invalid request: %s", reason),
		Category: "validation",
		Action:   "Send a well-formed JSON body.",
	}
}

// NewValidationError は必須フィールド欠落エラーを生成する。
func NewValidationError(field string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  fmt.Sprintf("Field %q is required", field),
		Category: "validation",
		Action:   fmt.Sprintf("Provide the %q field in the request body.", field),
	}
}
