package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const streamHeartbeat = 15 * time.Second

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	Orchestrator usecase.AlertOrchestrator
	Ledger       usecase.AlertLedger
	Logger       *slog.Logger
}

// AlertHandler raises, closes and streams alerts.
type AlertHandler struct {
	orchestrator usecase.AlertOrchestrator
	ledger       usecase.AlertLedger
	logger       *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		orchestrator: params.Orchestrator,
		ledger:       params.Ledger,
		logger:       params.Logger,
	}
}

// TriggerAlertRequest represents the request body for raising an alert
type TriggerAlertRequest struct {
	Type     string           `json:"type" validate:"omitempty,oneof=sos timer manual"`
	Location *LocationRequest `json:"location,omitempty"`
}

// TriggerAlertResponse is returned once the alert is recorded
type TriggerAlertResponse struct {
	AlertID          uuid.UUID `json:"alert_id"`
	ContactsNotified int       `json:"contacts_notified"`
	Warning          string    `json:"warning,omitempty"`
}

// ResolveAlertRequest represents the request body for closing an alert
type ResolveAlertRequest struct {
	Status string  `json:"status" validate:"omitempty,oneof=resolved false_alarm"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// TriggerSOS raises an alert for the caller and returns before delivery finishes.
func (h *AlertHandler) TriggerSOS(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req TriggerAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	alertType := entity.AlertType(req.Type)
	if alertType == "" {
		alertType = entity.AlertTypeSOS
	}

	result, err := h.orchestrator.TriggerAlert(c.Request().Context(), userID, &usecase.TriggerAlertInput{
		Type:     alertType,
		Location: req.Location.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := TriggerAlertResponse{
		AlertID:          result.AlertID,
		ContactsNotified: result.ContactsNotified,
	}
	if result.Warning != nil {
		var appErr domainerrors.AppError
		if errors.As(result.Warning, &appErr) {
			resp.Warning = appErr.ErrorCode()
		} else {
			resp.Warning = domainerrors.ErrDirectoryUnavailable.ErrorCode()
		}
	}

	return response.Success(c, http.StatusCreated, resp)
}

// ResolveAlert closes one of the caller's alerts
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req ResolveAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid resolve input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	if err := h.orchestrator.ResolveAlert(c.Request().Context(), userID, alertID, &usecase.ResolveAlertInput{
		Status: entity.AlertStatus(req.Status),
		Notes:  req.Notes,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListAlerts returns the caller's alerts, newest first
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	alerts, err := h.ledger.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// GetAlert returns one of the caller's alerts with its delivery log.
// Alerts of other users are reported as missing.
func (h *AlertHandler) GetAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.ledger.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if alert.UserID != userID {
		return response.HandleAppError(c, domainerrors.ErrAlertNotFound)
	}

	return response.Success(c, http.StatusOK, alert)
}

// StreamActiveAlerts streams projection changes of the caller's alerts as server-sent events.
func (h *AlertHandler) StreamActiveAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	ctx := c.Request().Context()
	// The snapshot is replayed inside SubscribeActiveAlerts, before the loop below runs.
	pending := newLiveAlertQueue()

	unsubscribe, err := h.ledger.SubscribeActiveAlerts(ctx, userID, pending.push)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unsubscribe()

	res := c.Response()
	// The stream outlives the server write timeout.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case <-pending.ready:
			for _, alert := range pending.drain() {
				payload, err := json.Marshal(alert)
				if err != nil {
					h.logger.Error("Failed to encode live alert",
						slog.String("alert_id", alert.AlertID.String()),
						slog.Any("error", err),
					)

					continue
				}
				if _, err := fmt.Fprintf(res, "event: alert\ndata: %s\n\n", payload); err != nil {
					return nil
				}
			}
			res.Flush()
		}
	}
}

// liveAlertQueue buffers projection changes between the subscription callback and
// the stream writer. push never blocks; a newer state of an alert replaces an
// unsent older one, so the queue holds at most one entry per alert.
type liveAlertQueue struct {
	mu      sync.Mutex
	pending []*entity.LiveAlert
	index   map[uuid.UUID]int
	ready   chan struct{}
}

func newLiveAlertQueue() *liveAlertQueue {
	return &liveAlertQueue{
		index: make(map[uuid.UUID]int),
		ready: make(chan struct{}, 1),
	}
}

func (q *liveAlertQueue) push(alert *entity.LiveAlert) {
	q.mu.Lock()
	if i, ok := q.index[alert.AlertID]; ok {
		q.pending[i] = alert
	} else {
		q.index[alert.AlertID] = len(q.pending)
		q.pending = append(q.pending, alert)
	}
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *liveAlertQueue) drain() []*entity.LiveAlert {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	clear(q.index)

	return out
}
