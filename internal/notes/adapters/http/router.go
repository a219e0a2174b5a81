// Package http содержит HTTP транспорт сервиса заметок.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/notes/adapters/http/middleware"
	apiv1 "gonotes/pkg/api/notes/v1"
)

// RouterOptions - настройки маршрутизатора.
type RouterOptions struct {
	CORSOrigins []string
}

// SetupRouter регистрирует middleware и маршруты GET/POST /notes.
func SetupRouter(app *fiber.App, notesService NotesService, opts RouterOptions) {
	handler := NewHandler(notesService)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	if len(opts.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
			AllowHeaders:  []string{fiber.HeaderContentType, middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
		}))
	}

	app.Get(apiv1.NotesPath, handler.ListNotes)
	app.Post(apiv1.NotesPath, handler.CreateNote)

	app.Use(NotFound)
}
