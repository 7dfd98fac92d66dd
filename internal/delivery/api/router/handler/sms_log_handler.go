package handler

import (
	"net/http"
	"strconv"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SMSLogHandlerParams holds dependencies for SMSLogHandler, injected by Fx.
type SMSLogHandlerParams struct {
	fx.In

	SMSLogUC usecase.SMSLogUsecase
}

// SMSLogHandler lists SMS sent on behalf of the caller.
type SMSLogHandler struct {
	smsLogUC usecase.SMSLogUsecase
}

// NewSMSLogHandler is the constructor for SMSLogHandler
func NewSMSLogHandler(params SMSLogHandlerParams) *SMSLogHandler {
	return &SMSLogHandler{smsLogUC: params.SMSLogUC}
}

// ListSMSLogs returns the most recent SMS; the limit query parameter is optional.
func (h *SMSLogHandler) ListSMSLogs(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	logs, err := h.smsLogUC.ListSMSLogs(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
