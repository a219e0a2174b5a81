// Package notes реализует HTTP клиент API заметок.
package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	apiv1 "gonotes/pkg/api/notes/v1"
	"gonotes/pkg/logger"
)

// ErrUnexpectedStatus возвращается, когда сервер ответил кодом, отличным от ожидаемого.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Константы для сообщений logger и ошибок.
const (
	LogListNotes  = "requesting notes"
	LogCreateNote = "creating note"

	ErrRequest     = "request to notes API failed"
	ErrDecodeBody  = "failed to decode response body"
	ErrConvertNote = "failed to convert note from response"
)

// Client - клиент HTTP API заметок.
type Client struct {
	http *client.Client
}

// New создает клиент для указанного базового адреса.
// Нулевой timeout означает отсутствие ограничения.
func New(baseURL string, timeout time.Duration) *Client {
	c := client.New().SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// ListNotes возвращает все заметки в порядке создания.
func (c *Client) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	logger.Log(ctx).Debug(ctx, LogListNotes)

	resp, err := c.http.Get(apiv1.NotesPath, client.Config{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrRequest, err)
	}
	defer resp.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var body []apiv1.Note
	if err := resp.JSON(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDecodeBody, err)
	}

	notes := make([]*entities.Note, 0, len(body))
	for _, n := range body {
		note, err := n.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrConvertNote, err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

// CreateNote отправляет новую заметку и возвращает ее в том виде, в котором ее сохранил сервер.
func (c *Client) CreateNote(ctx context.Context, title, content string) (*entities.Note, error) {
	logger.Log(ctx).Debug(ctx, LogCreateNote, zap.Int("title_length", len(title)))

	resp, err := c.http.Post(apiv1.NotesPath, client.Config{
		Ctx:  ctx,
		Body: apiv1.CreateNoteRequest{Title: title, Content: content},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrRequest, err)
	}
	defer resp.Close()

	if err := checkStatus(resp, http.StatusCreated, http.StatusOK); err != nil {
		return nil, err
	}

	var body apiv1.Note
	if err := resp.JSON(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDecodeBody, err)
	}

	note, err := body.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConvertNote, err)
	}

	return note, nil
}

func checkStatus(resp *client.Response, expected ...int) error {
	status := resp.StatusCode()
	for _, code := range expected {
		if status == code {
			return nil
		}
	}

	var apiErr apiv1.ErrorResponse
	if err := resp.JSON(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, status, apiErr.Error)
	}
	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
}
