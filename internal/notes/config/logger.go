package config

import (
	"gonotes/pkg/logger"
)

// LoggingConfig - уровень и режим логирования. Режим "production" включает JSON вывод,
// любое другое значение - development.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTES_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTES_LOGGER_MODE" env-default:"development"`
}

// Environment возвращает режим logger.
func (l LoggingConfig) Environment() logger.Environment {
	return logger.ParseEnvironment(l.Mode)
}

// NewLogger создает logger с этими настройками.
func (l LoggingConfig) NewLogger() (*logger.Logger, error) {
	return logger.NewLogger(l.Environment(), l.Level)
}
