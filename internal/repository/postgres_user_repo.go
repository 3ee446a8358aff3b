package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexv/vkminiapp/internal/model"
)

// userColumns はusersテーブルの全カラム。scanUserの読み取り順と一致させること。
const userColumns = `id, vk_id, first_name, last_name, photo_100, photo_200, phone, email, created_at, updated_at`

// rowScanner は*sql.Rowと*sql.Rowsの共通スキャンインターフェース。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser は1行をmodel.Userに読み取る。
func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.VKID, &user.FirstName, &user.LastName,
		&user.Photo100, &user.Photo200, &user.Phone, &user.Email,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByVKID は指定VK IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByVKID(ctx context.Context, vkID int64) (*model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE vk_id = $1`,
		vkID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by vk_id: %w", err)
	}

	return user, nil
}

// UpsertByVKID はVKプロフィールでユーザーを作成または更新する。
// 既存行があればプロフィールフィールドとupdated_atを更新し、なければ新規行を
// 挿入する。検索・書き込み・確認読み取りは1つのトランザクションで実行され、
// いずれかが失敗するとすべて破棄される。戻り値は常に書き込み後の行と、
// 新規作成されたかどうかのフラグ。
func (r *PostgresUserRepo) UpsertByVKID(ctx context.Context, profile *model.VKProfile) (*model.User, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 既存ユーザーを検索
	_, err = scanUser(tx.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE vk_id = $1`,
		profile.VKID,
	))

	var (
		user    *model.User
		created bool
	)

	switch {
	case err == sql.ErrNoRows:
		// 新規ユーザー: 挿入してサーバー採番のIDで再読込
		var id int64
		err = tx.QueryRowContext(ctx,
			`INSERT INTO users (vk_id, first_name, last_name, photo_100, photo_200)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			profile.VKID, profile.FirstName, profile.LastName, profile.Photo100, profile.Photo200,
		).Scan(&id)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert user: %w", err)
		}

		user, err = scanUser(tx.QueryRowContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1`,
			id,
		))
		if err != nil {
			return nil, false, fmt.Errorf("failed to read inserted user: %w", err)
		}
		created = true

	case err != nil:
		return nil, false, fmt.Errorf("failed to find user by vk_id: %w", err)

	default:
		// 既存ユーザー: プロフィールを更新して更新後の行を再読込
		_, err = tx.ExecContext(ctx,
			`UPDATE users
			 SET first_name = $1, last_name = $2, photo_100 = $3, photo_200 = $4, updated_at = NOW()
			 WHERE vk_id = $5`,
			profile.FirstName, profile.LastName, profile.Photo100, profile.Photo200, profile.VKID,
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update user: %w", err)
		}

		user, err = scanUser(tx.QueryRowContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE vk_id = $1`,
			profile.VKID,
		))
		if err != nil {
			return nil, false, fmt.Errorf("failed to read updated user: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, created, nil
}

// UpdatePhone は指定VK IDのユーザーの電話番号を更新し、更新後の行を返す。
// 該当行がない場合はnilを返す。
func (r *PostgresUserRepo) UpdatePhone(ctx context.Context, vkID int64, phone *string) (*model.User, error) {
	return r.updateColumn(ctx, "phone", vkID, phone)
}

// UpdateEmail は指定VK IDのユーザーのメールアドレスを更新し、更新後の行を返す。
// 該当行がない場合はnilを返す。
func (r *PostgresUserRepo) UpdateEmail(ctx context.Context, vkID int64, email *string) (*model.User, error) {
	return r.updateColumn(ctx, "email", vkID, email)
}

// updateColumn は単一カラムとupdated_atを更新し、確認読み取りした行を返す。
// 更新と読み取りは1つのトランザクションで実行する。columnは呼び出し元の
// 固定文字列のみを渡すこと。
func (r *PostgresUserRepo) updateColumn(ctx context.Context, column string, vkID int64, value *string) (*model.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE users SET `+column+` = $1, updated_at = NOW() WHERE vk_id = $2`,
		value, vkID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", column, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}

	user, err := scanUser(tx.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE vk_id = $1`,
		vkID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to read updated user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
