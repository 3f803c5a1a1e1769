package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
	"github.com/qrlogix/qrlogix-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_UnknownEndpoint(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/api?endpoint=bogus", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Endpoint not found", resp.Message)
}

func TestDispatch_MissingEndpointParam(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/api", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", decodeEnvelope(t, rec).Message)
}

func TestDispatch_WrongMethod(t *testing.T) {
	// known endpoints with the wrong method fall through to the 404 envelope
	router := newTestRouter(&service.Services{})

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api?endpoint=signup"},
		{http.MethodGet, "/api?endpoint=login"},
		{http.MethodGet, "/api?endpoint=create-qr"},
		{http.MethodPost, "/api?endpoint=check-qr"},
		{http.MethodPost, "/api?endpoint=test"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.target, "")

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Endpoint not found", decodeEnvelope(t, rec).Message)
		})
	}
}

func TestDispatch_UnknownPath(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/something-else", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", decodeEnvelope(t, rec).Message)
}

func TestDispatch_TrailingSlash(t *testing.T) {
	router := newTestRouter(&service.Services{
		DiagnosticsService: &mockDiagnosticsService{
			reportFn: func(ctx context.Context) models.DiagnosticsResponse {
				return models.DiagnosticsResponse{Success: true}
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/?endpoint=test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDispatch_OptionsAlwaysOK(t *testing.T) {
	router := newTestRouter(&service.Services{})

	for _, target := range []string{
		"/api?endpoint=signup",
		"/api?endpoint=bogus",
		"/api",
	} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "OPTIONS %s", target)
	}
}

func TestDispatch_CORSPreflight(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/api?endpoint=signup", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDispatch_QREndpointsDisabled(t *testing.T) {
	qrOff := false
	h := NewHandler(
		&service.Services{QRService: &mockQRService{}},
		config.Identity{Table: "users", UserType: "user", QREndpoints: &qrOff},
		logger.Nop(),
	)
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/api?endpoint=create-qr",
		`{"userId":42,"firstName":"Ann","lastName":"Lee","email":"ann@x.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api?endpoint=check-qr&userId=42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceID_GeneratedAndEchoed(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/api?endpoint=bogus", "")
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api?endpoint=bogus", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)

	assert.Equal(t, "trace-123", echo.Header().Get("X-Trace-ID"))
}

func TestRecover_PanicBecomesServerError(t *testing.T) {
	router := newTestRouter(&service.Services{
		DiagnosticsService: &mockDiagnosticsService{
			reportFn: func(ctx context.Context) models.DiagnosticsResponse {
				panic("boom")
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api?endpoint=test", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Server error", resp.Message)
	assert.Equal(t, "boom", resp.Error)
}

func TestDiagnosticsEndpoint(t *testing.T) {
	router := newTestRouter(&service.Services{
		DiagnosticsService: &mockDiagnosticsService{
			reportFn: func(ctx context.Context) models.DiagnosticsResponse {
				return models.DiagnosticsResponse{
					Success:            true,
					Message:            "API is working! (full diagnostics)",
					Version:            "2.0",
					DatabaseConnection: "Connected successfully!",
				}
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api?endpoint=test", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.DiagnosticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2.0", resp.Version)
}
