// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository - хранилище заметок, которое само назначает идентификаторы.
//
// Create присваивает следующий неиспользованный идентификатор (1, 2, ...) и текущее время,
// добавляет заметку в конец последовательности и возвращает ее.
// List возвращает все заметки в порядке создания; пустой срез, если заметок нет.
// Возвращаемые значения - копии: изменение их не затрагивает хранилище.
type NoteRepository interface {
	Create(ctx context.Context, title, content string) (*entities.Note, error)
	List(ctx context.Context) ([]*entities.Note, error)
}
