package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexv/vkminiapp/internal/model"
)

// addressColumns はaddressesテーブルの全カラム。scanAddressの読み取り順と一致させること。
const addressColumns = `id, user_id, title, address_text, created_at`

// scanAddress は1行をmodel.Addressに読み取る。
func scanAddress(row rowScanner) (*model.Address, error) {
	address := &model.Address{}
	err := row.Scan(
		&address.ID, &address.UserID, &address.Title, &address.AddressText,
		&address.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return address, nil
}

// PostgresAddressRepo はPostgreSQLを使用した住所リポジトリ。
type PostgresAddressRepo struct {
	db *sql.DB
}

// NewPostgresAddressRepo はPostgresAddressRepoを生成する。
func NewPostgresAddressRepo(db *sql.DB) *PostgresAddressRepo {
	return &PostgresAddressRepo{db: db}
}

// ListByUserID は指定ユーザーの住所一覧をcreated_at降順（新しい順）で返す。
// 住所が存在しない場合は空スライスを返す。
func (r *PostgresAddressRepo) ListByUserID(ctx context.Context, userID int64) ([]*model.Address, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	// 0件でもJSONで[]になるよう空スライスで初期化する
	addresses := make([]*model.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}

	return addresses, nil
}

// Create は住所を作成し、採番されたIDで確認読み取りした行を返す。
// 挿入と読み取りは1つのトランザクションで実行する。
func (r *PostgresAddressRepo) Create(ctx context.Context, userID int64, title, addressText string) (*model.Address, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO addresses (user_id, title, address_text) VALUES ($1, $2, $3) RETURNING id`,
		userID, title, addressText,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert address: %w", err)
	}

	address, err := scanAddress(tx.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted address: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return address, nil
}

// DeleteByID は指定IDの住所を削除し、行が削除されたかどうかを返す。
func (r *PostgresAddressRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete address: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rowsAffected > 0, nil
}

// compile-time interface check
var _ AddressRepository = (*PostgresAddressRepo)(nil)
