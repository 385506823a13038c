package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/castnavi-api/internal/usecases/authenticating/mocks"
	catalogmocks "github.com/vfg2006/castnavi-api/internal/usecases/catalog/mocks"
	managemocks "github.com/vfg2006/castnavi-api/internal/usecases/managing/mocks"
	reviewmocks "github.com/vfg2006/castnavi-api/internal/usecases/reviewing/mocks"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"github.com/vfg2006/castnavi-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type testServices struct {
	auth    *authmocks.MockAuthenticator
	catalog *catalogmocks.MockCatalogService
	reviews *reviewmocks.MockReviewService
	manage  *managemocks.MockManageService
	handler http.Handler
}

func newTestHandler(t *testing.T) *testServices {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Auth:    config.Auth{CookieName: "castnavi_session"},
		Cors:    config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		Metrics: config.Metrics{Enabled: true, Path: "/metrics"},
	}

	registry := prometheus.NewRegistry()

	s := &testServices{
		auth:    authmocks.NewMockAuthenticator(ctrl),
		catalog: catalogmocks.NewMockCatalogService(ctrl),
		reviews: reviewmocks.NewMockReviewService(ctrl),
		manage:  managemocks.NewMockManageService(ctrl),
	}

	s.handler = NewHandler(cfg, Services{
		DB:             okPinger{},
		Authenticator:  s.auth,
		Catalog:        s.catalog,
		Reviews:        s.reviews,
		Manage:         s.manage,
		Metrics:        middleware.NewMetrics(registry),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	return s
}

func TestHandler_PublicRoutesWithoutToken(t *testing.T) {
	s := newTestHandler(t)
	s.catalog.EXPECT().ListPrefectures(gomock.Any()).Return([]string{"東京都", "大阪府"}, nil)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/prefectures", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["東京都","大阪府"]`, rec.Body.String())
}

func TestHandler_AdminRequiresToken(t *testing.T) {
	s := newTestHandler(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/casts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
}

func TestHandler_AdminWithCookie(t *testing.T) {
	s := newTestHandler(t)
	s.auth.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleStaff}, nil)
	s.manage.EXPECT().ListCasts(gomock.Any()).Return([]*domain.Cast{{ID: "c1", Name: "Yui"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/casts", nil)
	req.AddCookie(&http.Cookie{Name: "castnavi_session", Value: "token"})
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yui")
}

func TestHandler_StaffCannotCreateUsers(t *testing.T) {
	s := newTestHandler(t)
	s.auth.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleStaff}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_InvalidToken(t *testing.T) {
	s := newTestHandler(t)
	s.auth.EXPECT().ValidateToken("ruim").Return(nil,
		authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, ""))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/me", nil)
	req.Header.Set("Authorization", "Bearer ruim")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	s := newTestHandler(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `castnavi_http_requests_total{code="200",method="get",route="/healthcheck"} 1`)
}
