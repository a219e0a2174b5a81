// Package config содержит конфигурацию клиента API заметок.
package config

import (
	"context"
	"os"
	"time"

	pkgconfig "gonotes/pkg/config"
)

// ServiceName - имя клиента в логах.
const ServiceName = "notesctl"

// EnvConfigFile - переменная окружения с путем к необязательному файлу конфигурации.
const EnvConfigFile = "NOTES_API_CONFIG_FILE"

// Config представляет конфигурацию клиента.
type Config struct {
	BaseURL string        `yaml:"base_url" env:"NOTES_API_URL" env-default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout" env:"NOTES_API_TIMEOUT" env-default:"10s"`
}

// Load загружает конфигурацию клиента из файла (если задан) и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	return pkgconfig.Load[Config](ctx, ServiceName, os.Getenv(EnvConfigFile))
}
