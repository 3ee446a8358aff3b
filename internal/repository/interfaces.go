// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/alexv/vkminiapp/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByVKID は指定VK IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByVKID(ctx context.Context, vkID int64) (*model.User, error)

	// UpsertByVKID はVKプロフィールでユーザーを作成または更新する。
	// 検索・書き込み・確認読み取りを1つのトランザクションで実行し、
	// 書き込み後の行と、新規作成されたかどうかを返す。
	UpsertByVKID(ctx context.Context, profile *model.VKProfile) (*model.User, bool, error)

	// UpdatePhone は指定VK IDのユーザーの電話番号を更新し、更新後の行を返す。
	// nilを渡すとカラムをNULLにクリアする。該当行がない場合はnilを返す。
	UpdatePhone(ctx context.Context, vkID int64, phone *string) (*model.User, error)

	// UpdateEmail は指定VK IDのユーザーのメールアドレスを更新し、更新後の行を返す。
	// nilを渡すとカラムをNULLにクリアする。該当行がない場合はnilを返す。
	UpdateEmail(ctx context.Context, vkID int64, email *string) (*model.User, error)
}

// AddressRepository は住所データの永続化インターフェース。
type AddressRepository interface {
	// ListByUserID は指定ユーザーの住所一覧をcreated_at降順で返す。
	// 住所が存在しない場合は空スライスを返す（エラーではない）。
	ListByUserID(ctx context.Context, userID int64) ([]*model.Address, error)

	// Create は住所を作成し、サーバー側で採番された行を返す。
	// 所有者の存在確認は行わない。
	Create(ctx context.Context, userID int64, title, addressText string) (*model.Address, error)

	// DeleteByID は指定IDの住所を削除し、行が削除されたかどうかを返す。
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
