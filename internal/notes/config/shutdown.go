package config

import "time"

// ShutdownConfig задает, сколько ждать остановки HTTP сервера и закрытия хранилища.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"NOTES_SHUTDOWN_TIMEOUT" env-default:"5s"`
}
