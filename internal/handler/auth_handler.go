package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexv/vkminiapp/internal/model"
)

// AuthServiceInterface はAuthHandlerが依存する認証サービスのインターフェース。
type AuthServiceInterface interface {
	Authenticate(ctx context.Context, profile *model.VKProfile) (*model.User, error)
}

// AuthHandler はVK認証エンドポイントのハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成する。
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// authVKRequest はPOST /api/auth/vkのリクエストボディ。
// 必須フィールドの欠落を検出するためポインタで受ける。
// access_tokenは受け取るが検証には使用しない。
type authVKRequest struct {
	ID          *int64  `json:"id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Photo100    *string `json:"photo_100"`
	Photo200    *string `json:"photo_200"`
	AccessToken *string `json:"access_token"`
}

// validate は必須フィールドの存在を確認し、欠落フィールド名付きのエラーを返す。
func (req *authVKRequest) validate() *model.APIError {
	if req.ID == nil {
		return model.NewValidationError("id")
	}
	if req.FirstName == nil {
		return model.NewValidationError("first_name")
	}
	if req.LastName == nil {
		return model.NewValidationError("last_name")
	}
	return nil
}

// AuthVK はPOST /api/auth/vkを処理する。
// VKプロフィールでユーザーをupsertし、確定後のユーザー行を返す。
func (h *AuthHandler) AuthVK(w http.ResponseWriter, r *http.Request) {
	var req authVKRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("malformed JSON body"))
		return
	}
	if apiErr := req.validate(); apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	profile := &model.VKProfile{
		VKID:      *req.ID,
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Photo100:  req.Photo100,
		Photo200:  req.Photo200,
	}

	user, err := h.service.Authenticate(r.Context(), profile)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, user)
}
