package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
	"github.com/qrlogix/qrlogix-server/models"
	"github.com/stretchr/testify/require"
)

// The mocks below implement the service interfaces through function fields,
// so each test wires exactly the behavior it needs. A nil field means the
// test does not expect that call.

type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "test-token"}, nil
	}
	return m.createTokenFn(ctx, user)
}

type mockQRService struct {
	issueQRCodeFn func(ctx context.Context, req models.CreateQRRequest) (models.QRCode, bool, error)
	getQRCodeFn   func(ctx context.Context, userID int64) (models.QRCode, bool, error)
}

func (m *mockQRService) IssueQRCode(ctx context.Context, req models.CreateQRRequest) (models.QRCode, bool, error) {
	return m.issueQRCodeFn(ctx, req)
}

func (m *mockQRService) GetQRCode(ctx context.Context, userID int64) (models.QRCode, bool, error) {
	return m.getQRCodeFn(ctx, userID)
}

type mockDiagnosticsService struct {
	reportFn func(ctx context.Context) models.DiagnosticsResponse
}

func (m *mockDiagnosticsService) Report(ctx context.Context) models.DiagnosticsResponse {
	return m.reportFn(ctx)
}

// newTestRouter assembles the full middleware chain around the given mocks,
// the same way the server does in production.
func newTestRouter(services *service.Services) http.Handler {
	h := NewHandler(services, config.Identity{Table: "users", UserType: "user"}, logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
