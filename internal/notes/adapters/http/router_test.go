package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	noteshttp "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
	apiv1 "gonotes/pkg/api/notes/v1"
	"gonotes/pkg/logger"
)

var errStorage = errors.New("storage unavailable")

type failingService struct{}

func (failingService) CreateNote(context.Context, string, string) (*entities.Note, error) {
	return nil, errStorage
}

func (failingService) ListNotes(context.Context) ([]*entities.Note, error) {
	return nil, errStorage
}

type panickingService struct{ failingService }

func (panickingService) ListNotes(context.Context) ([]*entities.Note, error) {
	panic("boom")
}

func newApp(t *testing.T, svc noteshttp.NotesService) *fiber.App {
	t.Helper()
	a := fiber.New()
	noteshttp.SetupRouter(a, svc, noteshttp.RouterOptions{CORSOrigins: []string{"*"}})
	return a
}

func newMemoryApp(t *testing.T) *fiber.App {
	t.Helper()
	return newApp(t, app.NewNoteUseCase(memory.NewNoteRepository()))
}

func doRequest(t *testing.T, a *fiber.App, method, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, apiv1.NotesPath, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := a.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestListNotesEmpty(t *testing.T) {
	a := newMemoryApp(t)

	resp, body := doRequest(t, a, fiber.MethodGet, "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCreateNote(t *testing.T) {
	a := newMemoryApp(t)

	resp, body := doRequest(t, a, fiber.MethodPost, `{"title":"Test","content":"Sample note"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created apiv1.Note
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Test", created.Title)
	assert.Equal(t, "Sample note", created.Content)

	_, err := apiv1.ParseTimestamp(created.CreatedAt)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(created.CreatedAt, "Z"))

	resp, body = doRequest(t, a, fiber.MethodGet, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []apiv1.Note
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Equal(t, []apiv1.Note{created}, listed)
}

func TestCreateTwoNotes(t *testing.T) {
	a := newMemoryApp(t)

	_, first := doRequest(t, a, fiber.MethodPost, `{"title":"Note 1","content":"Content 1"}`)
	_, second := doRequest(t, a, fiber.MethodPost, `{"title":"Note 2","content":"Content 2"}`)

	var n1, n2 apiv1.Note
	require.NoError(t, json.Unmarshal(first, &n1))
	require.NoError(t, json.Unmarshal(second, &n2))
	assert.Equal(t, int64(1), n1.ID)
	assert.Equal(t, int64(2), n2.ID)

	_, body := doRequest(t, a, fiber.MethodGet, "")
	var listed []apiv1.Note
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Equal(t, []apiv1.Note{n1, n2}, listed)
}

func TestCreateNoteWithoutFields(t *testing.T) {
	a := newMemoryApp(t)

	resp, body := doRequest(t, a, fiber.MethodPost, `{}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created apiv1.Note
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Empty(t, created.Title)
	assert.Empty(t, created.Content)
}

func TestCreateNoteMalformedBody(t *testing.T) {
	a := newMemoryApp(t)

	resp, body := doRequest(t, a, fiber.MethodPost, `{"title":`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid request body"}`, string(body))

	_, list := doRequest(t, a, fiber.MethodGet, "")
	assert.JSONEq(t, `[]`, string(list))
}

func TestServiceErrors(t *testing.T) {
	a := newApp(t, failingService{})

	resp, body := doRequest(t, a, fiber.MethodGet, "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))

	resp, body = doRequest(t, a, fiber.MethodPost, `{"title":"a","content":"b"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
}

func TestPanicRecovery(t *testing.T) {
	a := newApp(t, panickingService{})

	resp, body := doRequest(t, a, fiber.MethodGet, "")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
}

func TestRouteNotFound(t *testing.T) {
	a := newMemoryApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/notes/1", nil)
	resp, err := a.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	a := newMemoryApp(t)

	t.Run("echoes client id", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, apiv1.NotesPath, nil)
		req.Header.Set(middleware.HeaderRequestID, "client-id")

		resp, err := a.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "client-id", resp.Header.Get(middleware.HeaderRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		resp, _ := doRequest(t, a, fiber.MethodGet, "")
		assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	})
}

func TestRequestLogsCarryRequestIDOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetGlobalLogger(logger.NewFromZap(zap.New(core)))
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	a := newMemoryApp(t)
	req := httptest.NewRequest(fiber.MethodPost, apiv1.NotesPath, strings.NewReader(`{"title":"Test","content":"Sample note"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderRequestID, "trace-1")

	resp, err := a.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	entries := logs.All()
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		ids := 0
		for _, f := range entry.Context {
			if f.Key == logger.RequestID {
				ids++
				assert.Equal(t, "trace-1", f.String, entry.Message)
			}
		}
		assert.Equal(t, 1, ids, entry.Message)
	}
}
