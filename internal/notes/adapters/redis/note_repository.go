// Package redis реализует хранилище заметок поверх Redis.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	apiv1 "gonotes/pkg/api/notes/v1"
	"gonotes/pkg/logger"
)

// Сообщения об ошибках.
const (
	ErrCreateNote  = "failed to create note in redis"
	ErrListNotes   = "failed to list notes from redis"
	ErrDecodeNote  = "failed to decode note record"
	ErrParseTimeAt = "failed to parse note timestamp"
	ErrScriptReply = "unexpected create script reply"
)

// DefaultKeyPrefix - префикс ключей по умолчанию.
const DefaultKeyPrefix = "notes"

// createScript атомарно выдает следующий идентификатор и добавляет запись в конец списка,
// поэтому порядок списка совпадает с порядком идентификаторов.
// Время в формате фиксированной ширины в UTC сравнивается как строка; оно не уходит
// назад относительно последней заметки.
var createScript = redis.NewScript(`
local id = redis.call('INCR', KEYS[1])
local createdAt = ARGV[3]
local last = redis.call('GET', KEYS[3])
if last and last > createdAt then
  createdAt = last
end
redis.call('SET', KEYS[3], createdAt)
local record = cjson.encode({id = id, title = ARGV[1], content = ARGV[2], createdAt = createdAt})
redis.call('RPUSH', KEYS[2], record)
return {id, createdAt}
`)

// NoteRepository хранит счетчик в ключе <prefix>:seq, время последней заметки в <prefix>:last
// и записи в списке <prefix>:items.
type NoteRepository struct {
	client  Client
	seqKey  string
	lastKey string
	listKey string
	now     func() time.Time
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// Client - команды Redis, которые использует репозиторий.
type Client interface {
	redis.Scripter
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// NewNoteRepository создает репозиторий с указанным префиксом ключей.
func NewNoteRepository(client Client, keyPrefix string) *NoteRepository {
	return NewNoteRepositoryWithClock(client, keyPrefix, time.Now)
}

// NewNoteRepositoryWithClock создает репозиторий с заданным источником времени.
func NewNoteRepositoryWithClock(client Client, keyPrefix string, now func() time.Time) *NoteRepository {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &NoteRepository{
		client:  client,
		seqKey:  keyPrefix + ":seq",
		lastKey: keyPrefix + ":last",
		listKey: keyPrefix + ":items",
		now:     now,
	}
}

// Create выполняет скрипт создания заметки.
func (r *NoteRepository) Create(ctx context.Context, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "redis.NoteRepository.Create"))

	res, err := createScript.Run(ctx, r.client,
		[]string{r.seqKey, r.listKey, r.lastKey},
		title, content, apiv1.FormatTimestamp(r.now()),
	).Slice()
	if err != nil {
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	id, stored, ok := parseReply(res)
	if !ok {
		log.Error(ctx, ErrScriptReply, zap.Any("reply", res))
		return nil, fmt.Errorf("%s: %v", ErrScriptReply, res)
	}

	createdAt, err := apiv1.ParseTimestamp(stored)
	if err != nil {
		log.Error(ctx, ErrParseTimeAt, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseTimeAt, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", id))
	return entities.NewNote(id, title, content, createdAt), nil
}

// parseReply разбирает ответ скрипта {id, createdAt}.
func parseReply(res []any) (int64, string, bool) {
	if len(res) != 2 {
		return 0, "", false
	}
	id, idOK := res[0].(int64)
	createdAt, atOK := res[1].(string)
	return id, createdAt, idOK && atOK
}

// List читает весь список записей.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "redis.NoteRepository.List"))

	records, err := r.client.LRange(ctx, r.listKey, 0, -1).Result()
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	notes := make([]*entities.Note, 0, len(records))
	for _, raw := range records {
		var rec apiv1.Note
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			log.Error(ctx, ErrDecodeNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrDecodeNote, err)
		}
		note, err := rec.ToEntity()
		if err != nil {
			log.Error(ctx, ErrParseTimeAt, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrParseTimeAt, err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}
