package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexv/vkminiapp/internal/model"
)

// AddressServiceInterface はAddressHandlerが依存する住所サービスのインターフェース。
type AddressServiceInterface interface {
	List(ctx context.Context, userID int64) ([]*model.Address, error)
	Create(ctx context.Context, userID int64, title, addressText string) (*model.Address, error)
	Delete(ctx context.Context, addressID int64) error
}

// AddressHandler は住所管理エンドポイントのハンドラー。
type AddressHandler struct {
	service AddressServiceInterface
}

// NewAddressHandler はAddressHandlerの新しいインスタンスを生成する。
func NewAddressHandler(service AddressServiceInterface) *AddressHandler {
	return &AddressHandler{service: service}
}

// createAddressRequest はPOST /api/addressesのリクエストボディ。
// 必須フィールドの欠落を検出するためポインタで受ける。
type createAddressRequest struct {
	UserID      *int64  `json:"user_id"`
	Title       *string `json:"title"`
	AddressText *string `json:"address_text"`
}

// validate は必須フィールドの存在を確認し、欠落フィールド名付きのエラーを返す。
func (req *createAddressRequest) validate() *model.APIError {
	if req.UserID == nil {
		return model.NewValidationError("user_id")
	}
	if req.Title == nil {
		return model.NewValidationError("title")
	}
	if req.AddressText == nil {
		return model.NewValidationError("address_text")
	}
	return nil
}

// ListAddresses はGET /api/users/{vk_id}/addressesを処理する。
// chiはusersサブツリーで単一のURLパラメータ名しか持てないためvk_idを共有するが、
// このエンドポイントに限りセグメントは内部ユーザーIDを受ける。
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, apiErr := parseInt64Param(r, "vk_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	addresses, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, addresses)
}

// CreateAddress はPOST /api/addressesを処理する。
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req createAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("malformed JSON body"))
		return
	}
	if apiErr := req.validate(); apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	address, err := h.service.Create(r.Context(), *req.UserID, *req.Title, *req.AddressText)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w, http.StatusOK, address)
}

// DeleteAddress はDELETE /api/addresses/{address_id}を処理する。
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, apiErr := parseInt64Param(r, "address_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	if err := h.service.Delete(r.Context(), addressID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeMessageResponse(w, http.StatusOK, "Address deleted successfully")
}
