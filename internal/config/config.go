package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `env:"PORT,default=8080"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH,default=file://migrations"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	WaterPredictionURL     string        `env:"WATER_PREDICTION_URL,default=https://karan0301-sih.hf.space/predict"`
	WaterPredictionTimeout time.Duration `env:"WATER_PREDICTION_TIMEOUT,default=30s"`

	TelegramToken       string `env:"TELEGRAM_BOT_TOKEN"`
	HealthOfficerChatID int64  `env:"HEALTH_OFFICER_CHAT_ID"`
	ReportFontPath      string `env:"REPORT_FONT_PATH"`
}

// Load reads the optional .env files, then decodes the environment.
// Variables already set take precedence over .env entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// NotificationsEnabled reports whether Telegram delivery is configured.
func (c Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.HealthOfficerChatID != 0
}
