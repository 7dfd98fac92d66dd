// Package response writes the JSON envelope every API endpoint answers with:
//
//	{"data": ..., "meta": {"request_id": "..."}}
//	{"error": {"code": "...", "message": "...", "details": {"...": "..."}}, "meta": {...}}
//
// details is always an object: field name to failed rule for validation errors,
// {"reason": "..."} for domain errors.
package response

import (
	"net/http"

	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Meta struct {
	RequestID string `json:"request_id"`
}

type Payload struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type Problem struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type ProblemPayload struct {
	Error Problem `json:"error"`
	Meta  Meta    `json:"meta"`
}

func metaOf(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails reports whether clients may see error details for the status.
// Server faults and auth failures never leak them.
func exposesDetails(status int) bool {
	switch {
	case status >= http.StatusInternalServerError:
		return false
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Payload{Data: data, Meta: metaOf(c)})
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error envelope, dropping details the status must not expose.
func Error(c echo.Context, statusCode int, errorCode string, message string, details map[string]string) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ProblemPayload{
		Error: Problem{Code: errorCode, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details map[string]string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError answers a body or query that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// ReasonOf wraps the details of a domain error in the details object, or nil when there are none.
func ReasonOf(appErr domainerrors.AppError) map[string]string {
	if d := appErr.Details(); d != "" {
		return map[string]string{"reason": d}
	}

	return nil
}

// HandleAppError writes domain errors as their HTTP mapping. Anything else is
// returned to echo's error handler so it gets logged as an internal error.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), ReasonOf(appErr))
}
