package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/wagetrack/labour-backend-go/internal/config"
	"github.com/wagetrack/labour-backend-go/internal/pkg/jwt"
)

func testRouter() *chi.Mux {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	return NewRouter(
		cfg,
		jwtService,
		&authHandlerImpl{},
		&attendanceHandlerImpl{},
		&userHandlerImpl{},
		&masterHandlerImpl{},
		&settingHandlerImpl{},
		&reportHandlerImpl{},
	)
}

func routeExists(r *chi.Mux, method, path string) bool {
	rctx := chi.NewRouteContext()
	return r.Match(rctx, method, path)
}

func TestRouterRoutes(t *testing.T) {
	r := testRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/payments/estimate"},
		{http.MethodPost, "/api/v1/labour/attendance"},
		{http.MethodGet, "/api/v1/labour/dashboard"},
		{http.MethodGet, "/api/v1/manager/attendance/board"},
		{http.MethodPut, "/api/v1/manager/attendance/abc"},
		{http.MethodDelete, "/api/v1/admin/attendance/abc"},
		{http.MethodPost, "/api/v1/admin/labours/abc/reset-pin"},
		{http.MethodPut, "/api/v1/admin/settings"},
		{http.MethodGet, "/api/v1/admin/reports/payroll-incentives"},
		{http.MethodGet, "/api/v1/admin/reports/analytics"},
	}
	for _, tt := range tests {
		assert.True(t, routeExists(r, tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

// Managers run the day-to-day reports, not just the daily sheet.
func TestRouterManagerReports(t *testing.T) {
	r := testRouter()

	for _, path := range []string{
		"/api/v1/manager/reports/daily",
		"/api/v1/manager/reports/monthly",
		"/api/v1/manager/reports/labours/abc",
		"/api/v1/manager/reports/clients",
	} {
		assert.True(t, routeExists(r, http.MethodGet, path), path)
	}

	// Payroll stays admin-only.
	assert.False(t, routeExists(r, http.MethodGet, "/api/v1/manager/reports/payroll"))
}
