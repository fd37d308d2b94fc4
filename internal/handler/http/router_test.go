package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pertashop/backoffice-go/internal/config"
	"github.com/pertashop/backoffice-go/internal/pkg/jwt"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	handlers := Handlers{
		Auth:       NewAuthHandler(jwtService, nil),
		Staff:      NewStaffHandler(nil),
		Attendance: NewAttendanceHandler(nil),
		Overtime:   NewOvertimeHandler(nil),
		Payroll:    NewPayrollHandler(nil),
		Deposit:    NewDepositHandler(nil),
		Receivable: NewReceivableHandler(nil),
		Store:      NewStoreHandler(nil),
	}

	return NewRouter(cfg, jwtService, handlers)
}

func TestRouterHeartbeat(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	paths := []string{
		"/api/v1/staff",
		"/api/v1/attendances",
		"/api/v1/payrolls",
		"/api/v1/deposits",
		"/api/v1/receivables",
		"/api/v1/products",
	}

	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "expected 401 for %s without a token", path)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
