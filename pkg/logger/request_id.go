package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// NewRequestIDContext сохраняет идентификатор запроса в ctx.
// Вместо пустого идентификатора генерируется новый UUID.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// GenerateRequestID возвращает случайный UUID v4.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID привязывает logger к идентификатору запроса из ctx.
// Для контекстов с тем же идентификатором поле request_id не дублируется.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	id, ok := GetRequestID(ctx)
	if !ok || id == l.requestID {
		return l
	}
	return &Logger{l: l.l.With(zap.String(RequestID, id)), requestID: id}
}

// NewRequestContext возвращает контекст запроса с идентификатором
// и logger, уже привязанным к этому идентификатору.
func NewRequestContext(ctx context.Context, requestID string) context.Context {
	ctx = NewRequestIDContext(ctx, requestID)
	return NewContext(ctx, Log(ctx).WithRequestID(ctx))
}
