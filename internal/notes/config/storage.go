package config

import (
	"errors"
	"fmt"
)

// Поддерживаемые драйверы хранилища.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
)

// ErrUnknownDriver возвращается для неподдерживаемого значения NOTES_STORAGE_DRIVER.
var ErrUnknownDriver = errors.New("unknown storage driver")

// StorageConfig выбирает реализацию хранилища заметок.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"NOTES_STORAGE_DRIVER" env-default:"memory"`
}

// Validate проверяет, что драйвер поддерживается.
func (s *StorageConfig) Validate() error {
	switch s.Driver {
	case DriverMemory, DriverPostgres, DriverRedis, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, s.Driver)
	}
}
