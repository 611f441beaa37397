package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	DefaultTimezone          = "America/Sao_Paulo"
	DefaultMigrationsPath    = "migrations"
	DefaultKitchenTicketHour = 20
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,notEmpty"`
	DBDSN         string `env:"DB_DSN,notEmpty"`
	Environment   string `env:"ENV" envDefault:"development"`

	// HTTPAddr - адрес JSON API; пусто - API выключен
	HTTPAddr       string   `env:"HTTP_ADDR"`
	StaticTokens   []string `env:"STATIC_TOKENS" envSeparator:","`
	JWTSecret      string   `env:"JWT_HMAC_SECRET"`
	APIRatePerSec  float64  `env:"API_RATE_PER_SEC" envDefault:"10"`
	MigrationsPath string   `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`
	Timezone string  `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`

	// Чек кухни на завтра уходит в KitchenChatID в KitchenTicketHour; 0 - рассылка выключена
	KitchenChatID     int64 `env:"KITCHEN_CHAT_ID"`
	KitchenTicketHour int   `env:"KITCHEN_TICKET_HOUR" envDefault:"20"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg, err := FromEnv(env.ToMap(os.Environ()))
	if err != nil {
		return nil, err
	}

	log.Printf("Config loaded: env=%s admins=%d api=%t\n", cfg.Environment, len(cfg.AdminIDs), cfg.HTTPAddr != "")
	return cfg, nil
}

// FromEnv разбирает конфиг из набора переменных окружения
func FromEnv(values map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: values}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.StaticTokens = compact(cfg.StaticTokens)

	if cfg.KitchenTicketHour < 0 || cfg.KitchenTicketHour > 23 {
		return nil, fmt.Errorf("KITCHEN_TICKET_HOUR must be 0-23, got %d", cfg.KitchenTicketHour)
	}
	if cfg.APIRatePerSec <= 0 {
		return nil, fmt.Errorf("API_RATE_PER_SEC must be positive, got %v", cfg.APIRatePerSec)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// Location - часовой пояс пансиона; все даты доски считаются в нём
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// compact обрезает пробелы и выбрасывает пустые элементы списка
func compact(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
