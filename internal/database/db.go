package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/alexv/vkminiapp/internal/config"
)

// DSN はConfigの接続パラメータからlib/pq形式の接続文字列を組み立てる。
// パスワード等に空白や引用符が含まれてもよいよう各値を引用する。
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(cfg.DBHost), quoteDSNValue(cfg.DBPort),
		quoteDSNValue(cfg.DBUser), quoteDSNValue(cfg.DBPassword),
		quoteDSNValue(cfg.DBName), quoteDSNValue(cfg.DBSSLMode),
	)
}

// quoteDSNValue はDSNの値を単一引用符で囲み、バックスラッシュと引用符をエスケープする。
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Open はPostgreSQLデータベース接続プールを開く。
// sql.Openは接続を試行しないため、実際の接続確認にはdb.Ping()を使用すること。
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}
