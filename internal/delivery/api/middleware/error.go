package middleware

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into error envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type problem struct {
	status  int
	code    string
	message string
	details map[string]string
}

// classify maps err to what the client sees. Server faults are flagged for logging.
func classify(err error) (problem, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		p := problem{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: response.ReasonOf(appErr),
		}

		return p, p.status >= http.StatusInternalServerError
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		p := problem{status: httpErr.Code, code: "HTTP_ERROR", message: http.StatusText(httpErr.Code)}
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			p.message = msg
		}

		return p, false
	}

	return problem{
		status:  http.StatusInternalServerError,
		code:    "INTERNAL_ERROR",
		message: "Internal server error, please try again later",
	}, true
}

// HandleHTTPError is installed as echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	p, serverFault := classify(err)
	if serverFault {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Request failed",
			slog.Any("error", err),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Int("status", p.status),
		)
	}

	_ = response.Error(c, p.status, p.code, p.message, p.details)
}
