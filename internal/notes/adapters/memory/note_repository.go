// Package memory реализует хранилище заметок в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Option настраивает NoteRepository.
type Option func(*NoteRepository)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(r *NoteRepository) {
		r.now = now
	}
}

// NoteRepository хранит заметки в срезе в порядке создания.
// Счетчик и срез принадлежат только хранилищу и защищены mu.
type NoteRepository struct {
	mu     sync.RWMutex
	notes  []entities.Note
	nextID int64
	lastAt time.Time
	now    func() time.Time
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository создает пустое хранилище. Первый идентификатор - 1.
func NewNoteRepository(opts ...Option) *NoteRepository {
	r := &NoteRepository{
		notes:  make([]entities.Note, 0),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create добавляет заметку и возвращает ее копию. Ошибок не возвращает.
func (r *NoteRepository) Create(ctx context.Context, title, content string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := entities.NormalizeTimestamp(r.now())
	// Время создания не должно идти назад, даже если часы были переведены.
	if createdAt.Before(r.lastAt) {
		createdAt = r.lastAt
	}

	note := entities.NewNote(r.nextID, title, content, createdAt)
	r.nextID++
	r.lastAt = note.CreatedAt
	r.notes = append(r.notes, *note)

	logger.Log(ctx).Debug(ctx, "note stored in memory",
		zap.Int64("noteID", note.ID),
		zap.Int("total", len(r.notes)))

	return note.Clone(), nil
}

// List возвращает копии всех заметок в порядке создания. Ошибок не возвращает.
func (r *NoteRepository) List(_ context.Context) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Note, 0, len(r.notes))
	for i := range r.notes {
		out = append(out, r.notes[i].Clone())
	}
	return out, nil
}
