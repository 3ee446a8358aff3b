package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexv/vkminiapp/internal/model"
)

// UserServiceInterface はUserHandlerが依存するユーザーサービスのインターフェース。
type UserServiceInterface interface {
	GetByVKID(ctx context.Context, vkID int64) (*model.User, error)
	UpdatePhone(ctx context.Context, vkID int64, phone *string) (*model.User, error)
	UpdateEmail(ctx context.Context, vkID int64, email *string) (*model.User, error)
}

// UserHandler はユーザー参照・更新エンドポイントのハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// updatePhoneRequest はPUT /api/users/{vk_id}/phoneのリクエストボディ。
// フィールド省略と明示的なnullはどちらもカラムのNULLクリアとして扱う。
type updatePhoneRequest struct {
	Phone *string `json:"phone"`
}

// updateEmailRequest はPUT /api/users/{vk_id}/emailのリクエストボディ。
type updateEmailRequest struct {
	Email *string `json:"email"`
}

// GetUser はGET /api/users/{vk_id}を処理する。
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vkID, apiErr := parseInt64Param(r, "vk_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	user, err := h.service.GetByVKID(r.Context(), vkID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, user)
}

// UpdatePhone はPUT /api/users/{vk_id}/phoneを処理する。
func (h *UserHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	vkID, apiErr := parseInt64Param(r, "vk_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	var req updatePhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("malformed JSON body"))
		return
	}

	user, err := h.service.UpdatePhone(r.Context(), vkID, req.Phone)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, user)
}

// UpdateEmail はPUT /api/users/{vk_id}/emailを処理する。
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	vkID, apiErr := parseInt64Param(r, "vk_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	var req updateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("malformed JSON body"))
		return
	}

	user, err := h.service.UpdateEmail(r.Context(), vkID, req.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, user)
}
