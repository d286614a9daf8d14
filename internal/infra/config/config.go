package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы получения обновлений бота
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Типы хранилища сессий, результатов и выданных промокодов
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	Server struct {
		Host           string        `yaml:"host"`
		Port           string        `yaml:"port"`
		ReadTimeout    time.Duration `yaml:"read_timeout"`
		WriteTimeout   time.Duration `yaml:"write_timeout"`
		AllowedOrigins []string      `yaml:"allowed_origins"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`
		Mode        string        `yaml:"mode"`
		WebhookURL  string        `yaml:"webhook_url"`
		ListenAddr  string        `yaml:"listen_addr"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
	} `yaml:"telegram_bot"`
	Web struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"web"`
	Quiz struct {
		QuestionsPath string        `yaml:"questions_path"`
		PromoPrefix   string        `yaml:"promo_prefix"`
		PromoLength   int           `yaml:"promo_length"`
		RedactAnswers bool          `yaml:"redact_answers"`
		SessionTTL    time.Duration `yaml:"session_ttl"`
	} `yaml:"quiz"`
	Notify struct {
		Timeout         time.Duration `yaml:"timeout"`
		MaxRetries      uint64        `yaml:"max_retries"`
		InitialInterval time.Duration `yaml:"initial_interval"`
	} `yaml:"notify"`
	Storage struct {
		Type string `yaml:"type"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Messages map[string]string `yaml:"messages"`
	Log      struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "3001"
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 15 * time.Second
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.TelegramBot.Mode = ModePolling
	cfg.TelegramBot.ListenAddr = ":8443"
	cfg.TelegramBot.PollTimeout = 10 * time.Second
	cfg.Web.BaseURL = "http://localhost:5173"
	cfg.Quiz.QuestionsPath = "configs/questions.json"
	cfg.Quiz.PromoPrefix = "FREEBET"
	cfg.Quiz.PromoLength = 4
	cfg.Notify.Timeout = 10 * time.Second
	cfg.Notify.MaxRetries = 3
	cfg.Notify.InitialInterval = 500 * time.Millisecond
	cfg.Storage.Type = StorageMemory
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// LoadConfig загружает конфигурацию и проверяет обязательные параметры
func LoadConfig(filename string) (*Config, error) {
	cfg, err := Load(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load читает YAML-файл (если он есть), затем .env и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// файла нет, работаем на значениях по умолчанию и окружении
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", filename, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", filename, err)
			}
		}
	}

	// Загружаем переменные окружения из файла .env (если файл существует).
	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.TelegramBot.Token, "BOT_TOKEN", "TELEGRAM_BOT_TOKEN")
	setString(&cfg.TelegramBot.Mode, "BOT_MODE")
	setString(&cfg.TelegramBot.WebhookURL, "WEBHOOK_URL")
	setString(&cfg.TelegramBot.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.Web.BaseURL, "WEB_URL")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Quiz.QuestionsPath, "QUESTIONS_PATH")
	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		cfg.Server.AllowedOrigins = list
	}
	if redact := os.Getenv("REDACT_ANSWERS"); redact != "" {
		if v, err := strconv.ParseBool(redact); err == nil {
			cfg.Quiz.RedactAnswers = v
		}
	}
}

// setString записывает первое непустое значение из перечисленных переменных окружения
func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.TelegramBot.Token == "" {
		return errors.New("BOT_TOKEN is missing")
	}
	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			return errors.New("webhook mode requires telegram_bot.webhook_url")
		}
	default:
		return fmt.Errorf("unknown bot mode %q", c.TelegramBot.Mode)
	}
	switch c.Storage.Type {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis storage requires redis.addr")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	if c.Quiz.PromoPrefix == "" || c.Quiz.PromoLength <= 0 {
		return errors.New("quiz.promo_prefix and quiz.promo_length must be set")
	}
	return nil
}

// Addr адрес HTTP API
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
