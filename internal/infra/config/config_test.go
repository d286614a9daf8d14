package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// clearEnv отключает переменные окружения, которые могут перекрыть файл
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOT_TOKEN", "TELEGRAM_BOT_TOKEN", "WEB_URL", "PORT", "STORAGE_TYPE", "BOT_MODE", "QUESTIONS_PATH"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "8081"
  allowed_origins: ["https://quiz.example.com"]
telegram_bot:
  token: "file-token"
  poll_timeout: 5s
web:
  base_url: "https://quiz.example.com"
quiz:
  questions_path: "data/questions.json"
  promo_prefix: "BONUS"
  session_ttl: 1h
messages:
  consolation: "Спасибо!"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, "file-token", cfg.TelegramBot.Token)
	require.Equal(t, 5*time.Second, cfg.TelegramBot.PollTimeout)
	require.Equal(t, "https://quiz.example.com", cfg.Web.BaseURL)
	require.Equal(t, "BONUS", cfg.Quiz.PromoPrefix)
	require.Equal(t, 4, cfg.Quiz.PromoLength)
	require.Equal(t, time.Hour, cfg.Quiz.SessionTTL)
	require.Equal(t, "Спасибо!", cfg.Messages["consolation"])
	require.Equal(t, StorageMemory, cfg.Storage.Type)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
telegram_bot:
  token: "file-token"
`)
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("WEB_URL", "https://env.example.com")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "env-token", cfg.TelegramBot.Token)
	require.Equal(t, "https://env.example.com", cfg.Web.BaseURL)
	require.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "env-token")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, ModePolling, cfg.TelegramBot.Mode)
	require.Equal(t, "FREEBET", cfg.Quiz.PromoPrefix)
	require.Equal(t, "configs/questions.json", cfg.Quiz.QuestionsPath)
}

// TestDefaultQuestionsPathIsShipped банк вопросов по умолчанию лежит в репозитории
func TestDefaultQuestionsPathIsShipped(t *testing.T) {
	root := filepath.Join("..", "..", "..")
	_, err := os.Stat(filepath.Join(root, Default().Quiz.QuestionsPath))
	require.NoError(t, err)
}

func TestLoadConfigRequiresToken(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(writeConfig(t, "server:\n  port: \"3001\"\n"))
	require.Error(t, err)
}

func TestValidateRedisNeedsAddr(t *testing.T) {
	cfg := Default()
	cfg.TelegramBot.Token = "token"
	cfg.Storage.Type = StorageRedis
	require.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}

func TestValidateWebhookNeedsURL(t *testing.T) {
	cfg := Default()
	cfg.TelegramBot.Token = "token"
	cfg.TelegramBot.Mode = ModeWebhook
	require.Error(t, cfg.Validate())
}

func TestLoadSkipsValidation(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "quiz:\n  questions_path: \"q.json\"\n"))
	require.NoError(t, err)
	require.Empty(t, cfg.TelegramBot.Token)
	require.Equal(t, "q.json", cfg.Quiz.QuestionsPath)
}
