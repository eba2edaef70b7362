package middleware

import (
	"errors"
	"net/http"
	"strings"

	"spotQuest/domain"
	"spotQuest/pkg/logger"
	jsonres "spotQuest/pkg/response"

	"github.com/labstack/echo/v4"
)

var errorKinds = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "BAD_REQUEST"},
}

// MapError turns a handler error into a status and a body that is safe to
// show the caller.
func MapError(err error) (int, jsonres.ErrorBody) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, jsonres.Error(strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")), msg, nil)
	}

	for _, k := range errorKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		if k.status == http.StatusUnauthorized {
			return k.status, jsonres.Error(k.code, "Unauthorized", nil)
		}
		return k.status, jsonres.Error(k.code, publicMessage(err, k.kind), nil)
	}

	return http.StatusInternalServerError, jsonres.Error("INTERNAL_SERVER_ERROR", "Internal server error", nil)
}

// publicMessage drops the sentinel prefix, "not found: place not found"
// becomes "place not found".
func publicMessage(err, kind error) string {
	msg := err.Error()
	if i := strings.Index(msg, kind.Error()+": "); i >= 0 {
		return msg[i+len(kind.Error())+2:]
	}
	return kind.Error()
}

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := MapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(status)
	} else {
		sendErr = c.JSON(status, body)
	}
	if sendErr != nil {
		logger.Error("Failed to write error response", sendErr)
	}
}
