// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const localsRequestContext = "requestContext"

// NewRequestIDMiddleware принимает X-Request-ID клиента или генерирует новый,
// возвращает его в ответе и сохраняет контекст запроса с привязанным logger.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestContext(ctx.Context(), ctx.Get(HeaderRequestID))
		id, _ := logger.GetRequestID(requestCtx)

		ctx.Locals(localsRequestContext, requestCtx)
		ctx.Set(HeaderRequestID, id)
		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса, созданный NewRequestIDMiddleware.
// Без middleware создается новый контекст со сгенерированным идентификатором.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(localsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return logger.NewRequestContext(ctx.Context(), "")
}
