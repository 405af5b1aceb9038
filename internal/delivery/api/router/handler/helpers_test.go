package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"nudge/internal/delivery/api/validator"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newJSONContext builds a context for a JSON request; a nil userID leaves it unauthenticated
func newJSONContext(e *echo.Echo, method, target, body string, userID *uuid.UUID, roles ...entity.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != nil {
		deliverycontext.SetIdentity(c, *userID, roles)
	}

	return c, rec
}
