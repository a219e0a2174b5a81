// Package entities defines the domain entities for the notes service.
package entities

import "time"

// TimestampPrecision - точность, с которой хранится время создания заметки.
// Совпадает с точностью ISO-8601 представления на проводе.
const TimestampPrecision = time.Millisecond

// Note представляет собой заметку.
// ID и CreatedAt назначаются хранилищем и не меняются после создания.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
}

// NewNote создает заметку с назначенным идентификатором и временем создания.
func NewNote(id int64, title, content string, createdAt time.Time) *Note {
	return &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: NormalizeTimestamp(createdAt),
	}
}

// NormalizeTimestamp приводит время к UTC с точностью TimestampPrecision.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

// Clone возвращает независимую копию заметки.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}
