package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/config"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/infra/metrics"
	mockService "guardian/internal/mocks/service"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo      *echo.Echo
	tokens    *mockService.MockTokenService
	directory *mockUsecase.MockContactDirectory
}

func createTestServer(t *testing.T) *serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"

	tokens := mockService.NewMockTokenService(t)
	directory := mockUsecase.NewMockContactDirectory(t)

	params := router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC:  mockUsecase.NewMockProfileUsecase(t),
			LocationUC: mockUsecase.NewMockLocationResolver(t),
			Logger:     logger,
		}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{Directory: directory}),
		AlertHandler: handler.NewAlertHandler(handler.AlertHandlerParams{
			Orchestrator: mockUsecase.NewMockAlertOrchestrator(t),
			Ledger:       mockUsecase.NewMockAlertLedger(t),
			Logger:       logger,
		}),
		TimerHandler:   handler.NewTimerHandler(handler.TimerHandlerParams{Engine: mockUsecase.NewMockSafetyTimerEngine(t)}),
		SMSLogHandler:  handler.NewSMSLogHandler(handler.SMSLogHandlerParams{SMSLogUC: mockUsecase.NewMockSMSLogUsecase(t)}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
		Metrics:        metrics.NewCollector(),
	}

	return &serverFixture{
		echo:      newEcho(cfg, logger, params),
		tokens:    tokens,
		directory: directory,
	}
}

func (f *serverFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_RequiresToken(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/api/v1/contacts", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_TOKEN", body.Error.Code)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), body.Meta.RequestID)
}

func TestServer_AuthenticatedRoute(t *testing.T) {
	f := createTestServer(t)
	userID := uuid.New()

	f.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
	f.directory.EXPECT().ListContacts(mock.Anything, userID, userID).Return([]*entity.EmergencyContact{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/contacts", "", "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(extractData(t, rec)))
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestServer_BodyLimit(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/v1/contacts", `{"name":"`+strings.Repeat("a", 2048)+`"}`, "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
