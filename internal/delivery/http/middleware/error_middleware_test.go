package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"moteo/internal/delivery/http/response"
	domainerrors "moteo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func handleError(t *testing.T, err error) response.Response {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newTestErrorMiddleware().HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, body.Code, rec.Code)

	return body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	body := handleError(t, domainerrors.ErrHandleTaken)

	assert.False(t, body.Success)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "HANDLE_TAKEN", body.Error.Code)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
	body := handleError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", body.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "bad payload"))

	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "bad payload", body.Message)
}

func TestHandleHTTPError_UnclassifiedError(t *testing.T) {
	body := handleError(t, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, body.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// The driver error must never reach the client.
	assert.NotContains(t, body.Message, "connection reset")
	assert.Empty(t, body.Error.Details)
}
