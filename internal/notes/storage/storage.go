// Package storage выбирает и открывает реализацию хранилища заметок по конфигурации.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/adapters/postgres"
	noteredis "gonotes/internal/notes/adapters/redis"
	"gonotes/internal/notes/adapters/sqlite"
	"gonotes/internal/notes/config"
	"gonotes/internal/notes/ports/repositories"
	pgdb "gonotes/pkg/db/postgres"
	pkgredis "gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
)

// Константы для сообщений logger и ошибок.
const (
	LogOpening = "opening note storage"
	LogClosing = "closing note storage"

	ErrMigrate    = "failed to migrate postgres schema"
	ErrOpenDriver = "failed to open storage driver"
)

// Storage - открытое хранилище и функция освобождения его ресурсов.
type Storage struct {
	Repository repositories.NoteRepository
	Driver     string
	closeFn    func(ctx context.Context) error
}

// Close освобождает ресурсы драйвера.
func (s *Storage) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, LogClosing, zap.String("driver", s.Driver))
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// Open создает хранилище выбранного драйвера.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogOpening, zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return &Storage{Repository: memory.NewNoteRepository(), Driver: config.DriverMemory}, nil

	case config.DriverPostgres:
		if err := pgdb.Migrate(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsDir); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMigrate, err)
		}
		database, err := pgdb.New(ctx, cfg.Postgres.GetDSN(), pgdb.PoolOptions{
			MinConns:    cfg.Postgres.MinConn,
			MaxConns:    cfg.Postgres.MaxConn,
			PingTimeout: cfg.Postgres.PingTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrOpenDriver, err)
		}
		return &Storage{
			Repository: postgres.NewNoteRepository(database.Pool()),
			Driver:     config.DriverPostgres,
			closeFn: func(ctx context.Context) error {
				database.Close(ctx)
				return nil
			},
		}, nil

	case config.DriverRedis:
		client, err := pkgredis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrOpenDriver, err)
		}
		return &Storage{
			Repository: noteredis.NewNoteRepository(client.RawClient(), cfg.Redis.KeyPrefix),
			Driver:     config.DriverRedis,
			closeFn:    client.Close,
		}, nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrOpenDriver, err)
		}
		return &Storage{
			Repository: repo,
			Driver:     config.DriverSQLite,
			closeFn: func(context.Context) error {
				return repo.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
