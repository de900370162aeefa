package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	for _, k := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "WATER_PREDICTION_TIMEOUT", "TELEGRAM_BOT_TOKEN", "HEALTH_OFFICER_CHAT_ID"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)
	req.Equal("8080", cfg.Port)
	req.Equal("info", cfg.LogLevel)
	req.Equal("file://migrations", cfg.MigrationsPath)
	req.Equal(30*time.Second, cfg.WaterPredictionTimeout)
	req.Empty(cfg.DatabaseURL)
	req.False(cfg.NotificationsEnabled())
}

func TestLoad_EnvironmentAndDotEnv(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WATER_PREDICTION_TIMEOUT", "5s")
	for _, k := range []string{"TELEGRAM_BOT_TOKEN", "HEALTH_OFFICER_CHAT_ID"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=7070\nTELEGRAM_BOT_TOKEN=token\nHEALTH_OFFICER_CHAT_ID=-100123\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_BOT_TOKEN")
		os.Unsetenv("HEALTH_OFFICER_CHAT_ID")
	})

	cfg, err := Load(path)
	req.NoError(err)
	req.Equal("9090", cfg.Port)
	req.Equal(5*time.Second, cfg.WaterPredictionTimeout)
	req.Equal("token", cfg.TelegramToken)
	req.Equal(int64(-100123), cfg.HealthOfficerChatID)
	req.True(cfg.NotificationsEnabled())
}
