// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Запросы к таблице notes.
// Блокировка сериализует вставки, поэтому порядок id совпадает с порядком created_at,
// а GREATEST не дает времени создания уйти назад относительно последней заметки.
const (
	queryLockNotes  = `LOCK TABLE notes IN SHARE ROW EXCLUSIVE MODE`
	queryInsertNote = `INSERT INTO notes (title, content, created_at) ` +
		`VALUES ($1, $2, GREATEST($3::timestamptz, (SELECT MAX(created_at) FROM notes))) ` +
		`RETURNING id, created_at`
	queryListNotes = `SELECT id, title, content, created_at FROM notes ORDER BY id`
)

// Сообщения об ошибках.
const (
	ErrBeginTx     = "failed to begin transaction"
	ErrLockTable   = "failed to lock notes table"
	ErrCreateNote  = "failed to create note"
	ErrCommitTx    = "failed to commit transaction"
	ErrListNotes   = "failed to list notes"
	ErrScanNote    = "failed to scan note"
	ErrIterateRows = "error iterating rows"
)

// PgxPoolInterface - подмножество методов pgxpool.Pool, нужное репозиторию.
type PgxPoolInterface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// NoteRepository реализует repositories.NoteRepository поверх Postgres.
// Идентификаторы выдает последовательность BIGSERIAL, поэтому они не переиспользуются.
type NoteRepository struct {
	pool PgxPoolInterface
	now  func() time.Time
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) *NoteRepository {
	return NewNoteRepositoryWithClock(pool, time.Now)
}

// NewNoteRepositoryWithClock создает репозиторий с заданным источником времени.
func NewNoteRepositoryWithClock(pool PgxPoolInterface, now func() time.Time) *NoteRepository {
	return &NoteRepository{pool: pool, now: now}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note")

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, ErrBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrBeginTx, err)
	}

	if _, err := tx.Exec(ctx, queryLockNotes); err != nil {
		rollback(ctx, log, tx)
		log.Error(ctx, ErrLockTable, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrLockTable, err)
	}

	var (
		noteID    int64
		createdAt time.Time
	)
	if err := tx.QueryRow(ctx, queryInsertNote, title, content, entities.NormalizeTimestamp(r.now())).
		Scan(&noteID, &createdAt); err != nil {
		rollback(ctx, log, tx)
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, ErrCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCommitTx, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", noteID))
	return entities.NewNote(noteID, title, content, createdAt), nil
}

func rollback(ctx context.Context, log *logger.Logger, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		log.Warn(ctx, "failed to rollback transaction", zap.Error(err))
	}
}

// List возвращает все заметки в порядке идентификаторов.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes")

	rows, err := r.pool.Query(ctx, queryListNotes)
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var (
			id        int64
			title     string
			content   string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &title, &content, &createdAt); err != nil {
			log.Error(ctx, ErrScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrScanNote, err)
		}
		notes = append(notes, entities.NewNote(id, title, content, createdAt))
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrIterateRows, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrIterateRows, err)
	}

	return notes, nil
}
