package handler

import (
	"fmt"
	"net/http"
)

// sampleTimestamp はサンプルエンドポイントが返す固定タイムスタンプ。
const sampleTimestamp = "2024-01-01T00:00:00Z"

// SampleHandler はフロントエンド開発用のサンプルデータエンドポイントのハンドラー。
// 返却内容は固定で、DBにはアクセスしない。
type SampleHandler struct{}

// NewSampleHandler はSampleHandlerの新しいインスタンスを生成する。
func NewSampleHandler() *SampleHandler {
	return &SampleHandler{}
}

// sampleItem はサンプルデータの1要素。
type sampleItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// sampleDataResponse はGET /api/dataのレスポンスボディ。
type sampleDataResponse struct {
	Data      []sampleItem `json:"data"`
	Total     int          `json:"total"`
	Timestamp string       `json:"timestamp"`
}

// sampleItemResponse はGET /api/items/{item_id}のレスポンスボディ。
type sampleItemResponse struct {
	Item      sampleItem `json:"item"`
	Timestamp string     `json:"timestamp"`
}

// GetData はGET /api/dataを処理する。固定のサンプル一覧を返す。
func (h *SampleHandler) GetData(w http.ResponseWriter, r *http.Request) {
	items := []sampleItem{
		{ID: 1, Name: "Sample Item 1", Value: 100},
		{ID: 2, Name: "Sample Item 2", Value: 200},
		{ID: 3, Name: "Sample Item 3", Value: 300},
	}

	writeSuccessResponse(w, http.StatusOK, sampleDataResponse{
		Data:      items,
		Total:     len(items),
		Timestamp: sampleTimestamp,
	})
}

// GetItem はGET /api/items/{item_id}を処理する。
// 要求されたIDから決定的に導出したサンプル項目を返す。
func (h *SampleHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, apiErr := parseInt64Param(r, "item_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	writeSuccessResponse(w, http.StatusOK, sampleItemResponse{
		Item: sampleItem{
			ID:    itemID,
			Name:  fmt.Sprintf("Sample Item %d", itemID),
			Value: itemID * 100,
		},
		Timestamp: sampleTimestamp,
	})
}

// Index はGET /を処理し、APIエンドポイント一覧のHTMLページを返す。
func (h *SampleHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, indexHTML)
}
