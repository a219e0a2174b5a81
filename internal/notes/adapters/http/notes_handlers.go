package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/entities"
	apiv1 "gonotes/pkg/api/notes/v1"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
	ErrMsgRouteNotFound      = "route not found"
)

// NotesService - бизнес-логика, которую вызывают обработчики.
type NotesService interface {
	CreateNote(ctx context.Context, title, content string) (*entities.Note, error)
	ListNotes(ctx context.Context) ([]*entities.Note, error)
}

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService NotesService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService NotesService) *Handler {
	return &Handler{notesService: notesService}
}

// ListNotes обрабатывает GET /notes.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.notesService.ListNotes(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.JSON(apiv1.FromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает POST /notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req apiv1.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.CreateNote(requestCtx, req.Title, req.Content)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(apiv1.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// NotFound отвечает на запросы к несуществующим маршрутам.
func NotFound(ctx fiber.Ctx) error {
	return sendError(ctx, fiber.StatusNotFound, ErrMsgRouteNotFound)
}

func sendError(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(apiv1.ErrorResponse{Error: message}); err != nil {
		return fmt.Errorf("failed to send %d response: %w", status, err)
	}
	return nil
}
