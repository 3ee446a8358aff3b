package config

import (
	"fmt"
	"os"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	ServerPort string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。暗黙のデフォルト接続先には
// フォールバックしない。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DBHost = os.Getenv("DB_HOST")
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}

	cfg.DBUser = os.Getenv("DB_USER")
	if cfg.DBUser == "" {
		missing = append(missing, "DB_USER")
	}

	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	if cfg.DBPassword == "" {
		missing = append(missing, "DB_PASSWORD")
	}

	cfg.DBName = os.Getenv("DB_NAME")
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.DBPort = getEnvString("DB_PORT", "5432")
	cfg.DBSSLMode = getEnvString("DB_SSLMODE", "disable")
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
