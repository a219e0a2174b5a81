// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Сообщения об ошибках уровня бизнес-логики.
const (
	ErrCreateNote = "failed to create note"
	ErrListNotes  = "failed to list notes"
)

// NoteUseCase связывает транспорт с хранилищем заметок.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote создает заметку. Заголовок и текст не проверяются.
func (uc *NoteUseCase) CreateNote(ctx context.Context, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "NoteUseCase.CreateNote"))

	note, err := uc.noteRepo.Create(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", note.ID))
	return note, nil
}

// ListNotes возвращает все заметки в порядке создания.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "NoteUseCase.ListNotes"))

	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}
