// Package model はドメインモデルを定義する。
package model

import "time"

// Address はユーザーが登録した配送先住所を表す。
// 所有者の存在確認は作成時に行わず、参照整合性はDBの外部キーに委ねる。
type Address struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	AddressText string    `json:"address_text"`
	CreatedAt   time.Time `json:"created_at"`
}
