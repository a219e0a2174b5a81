// Package v1 описывает JSON-контракт HTTP API заметок.
package v1

import (
	"fmt"
	"time"

	"gonotes/internal/notes/domain/entities"
)

// TimestampLayout - ISO-8601 с миллисекундами в UTC, например 2025-01-02T03:04:05.678Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Пути API.
const (
	NotesPath = "/notes"
)

// Note - заметка в том виде, в котором она передается по сети.
type Note struct {
	ID        int64  `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// CreateNoteRequest - тело запроса POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FormatTimestamp форматирует время по TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return entities.NormalizeTimestamp(t).Format(TimestampLayout)
}

// ParseTimestamp разбирает строку ISO-8601 (RFC 3339).
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return entities.NormalizeTimestamp(t), nil
}

// FromEntity преобразует доменную заметку в сетевое представление.
func FromEntity(n *entities.Note) Note {
	return Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: FormatTimestamp(n.CreatedAt),
	}
}

// FromEntities преобразует срез заметок; результат не бывает nil.
func FromEntities(notes []*entities.Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, FromEntity(n))
	}
	return out
}

// ToEntity преобразует сетевое представление обратно в доменную заметку.
func (n Note) ToEntity() (*entities.Note, error) {
	createdAt, err := ParseTimestamp(n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return entities.NewNote(n.ID, n.Title, n.Content, createdAt), nil
}
