// Package model はドメインモデルを定義する。
package model

import "time"

// User はVK経由で認証したサービス利用ユーザーを表す。
// NULL許容カラムはポインタで表現し、JSONではnullとして出力される。
type User struct {
	ID        int64     `json:"id"`
	VKID      int64     `json:"vk_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Photo100  *string   `json:"photo_100"`
	Photo200  *string   `json:"photo_200"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VKProfile はVKから受け取るプロフィールペイロードを表す。
// 呼び出し元から渡された内容をそのまま信頼する（アクセストークンの検証は行わない）。
type VKProfile struct {
	VKID      int64
	FirstName string
	LastName  string
	Photo100  *string
	Photo200  *string
}
