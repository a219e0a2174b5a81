// Package sqlite реализует хранилище заметок в файле SQLite (драйвер modernc.org/sqlite).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // регистрирует драйвер "sqlite"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	apiv1 "gonotes/pkg/api/notes/v1"
	"gonotes/pkg/logger"
)

const driverName = "sqlite"

// AUTOINCREMENT гарантирует, что идентификаторы не переиспользуются.
const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);`

// created_at хранится в формате фиксированной ширины в UTC, поэтому строки сравниваются как время.
// MAX не дает времени создания уйти назад относительно последней заметки.
const (
	queryInsertNote = `INSERT INTO notes (title, content, created_at) ` +
		`VALUES (?, ?, MAX(?, COALESCE((SELECT MAX(created_at) FROM notes), ''))) ` +
		`RETURNING id, created_at`
	queryListNotes = `SELECT id, title, content, created_at FROM notes ORDER BY id`
)

// Сообщения об ошибках.
const (
	ErrOpenDatabase = "failed to open sqlite database"
	ErrApplySchema  = "failed to apply sqlite schema"
	ErrCreateNote   = "failed to create note"
	ErrListNotes    = "failed to list notes"
	ErrScanNote     = "failed to scan note"
	ErrParseTimeAt  = "failed to parse note timestamp"
	ErrCloseDB      = "failed to close sqlite database"
)

// NoteRepository хранит заметки в таблице notes.
type NoteRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// Open открывает (или создает) файл базы и применяет схему.
func Open(ctx context.Context, path string) (*NoteRepository, error) {
	log := logger.Log(ctx).With(zap.String("path", path))

	db, err := sql.Open(driverName, path)
	if err != nil {
		log.Error(ctx, ErrOpenDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpenDatabase, err)
	}
	// Одно соединение: SQLite сериализует запись, а ":memory:" живет в рамках соединения.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		log.Error(ctx, ErrApplySchema, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrApplySchema, err)
	}

	log.Info(ctx, "sqlite note store opened")
	return &NoteRepository{db: db, now: time.Now}, nil
}

// SetClock подменяет источник времени.
func (r *NoteRepository) SetClock(now func() time.Time) {
	r.now = now
}

// Create вставляет заметку и возвращает ее с назначенным идентификатором.
func (r *NoteRepository) Create(ctx context.Context, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "sqlite.NoteRepository.Create"))

	var rec apiv1.Note
	if err := r.db.QueryRowContext(ctx, queryInsertNote,
		title, content, apiv1.FormatTimestamp(r.now()),
	).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	createdAt, err := apiv1.ParseTimestamp(rec.CreatedAt)
	if err != nil {
		log.Error(ctx, ErrParseTimeAt, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseTimeAt, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", rec.ID))
	return entities.NewNote(rec.ID, title, content, createdAt), nil
}

// List возвращает все заметки в порядке идентификаторов.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "sqlite.NoteRepository.List"))

	rows, err := r.db.QueryContext(ctx, queryListNotes)
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var rec apiv1.Note
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.CreatedAt); err != nil {
			log.Error(ctx, ErrScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrScanNote, err)
		}
		note, err := rec.ToEntity()
		if err != nil {
			log.Error(ctx, ErrParseTimeAt, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrParseTimeAt, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	return notes, nil
}

// Close закрывает базу данных.
func (r *NoteRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrCloseDB, err)
	}
	return nil
}
