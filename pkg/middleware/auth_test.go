package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const cookieName = "castnavi_session"

func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims); ok {
			w.Header().Set("X-User", claims.UserEmail)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 1, UserEmail: "admin@castnavi.jp", UserRoleID: domain.RoleAdmin}

	tests := []struct {
		name           string
		method         string
		path           string
		header         string
		cookie         string
		setupMock      func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "Rota pública não exige token",
			method:         http.MethodGet,
			path:           "/v1/casts",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Prefixo parecido não é rota administrativa",
			method:         http.MethodGet,
			path:           "/v1/administrators",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight passa sem token",
			method:         http.MethodOptions,
			path:           "/v1/admin/casts",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota administrativa sem token",
			method:         http.MethodGet,
			path:           "/v1/admin/casts",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/admin/casts",
			header:         "Basic abc",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido no header",
			method: http.MethodGet,
			path:   "/v1/admin/casts",
			header: "Bearer token-ok",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("token-ok").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "admin@castnavi.jp",
		},
		{
			name:   "Token válido no cookie",
			method: http.MethodGet,
			path:   "/v1/admin/me",
			cookie: "token-cookie",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("token-cookie").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "admin@castnavi.jp",
		},
		{
			name:   "Token expirado",
			method: http.MethodGet,
			path:   "/v1/admin/casts",
			header: "Bearer expirado",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("expirado").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authMock := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(authMock)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authMock, cookieName)(echoClaims()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, rec.Header().Get("X-User"))
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Sem claims", middleware: StaffOrAdmin(), expectedStatus: http.StatusUnauthorized},
		{name: "Staff acessa rota de staff", claims: &domain.Claims{UserRoleID: domain.RoleStaff}, middleware: StaffOrAdmin(), expectedStatus: http.StatusOK},
		{name: "Staff bloqueado em rota de admin", claims: &domain.Claims{UserRoleID: domain.RoleStaff}, middleware: AdminOnly(), expectedStatus: http.StatusForbidden},
		{name: "Admin acessa rota de admin", claims: &domain.Claims{UserRoleID: domain.RoleAdmin}, middleware: AdminOnly(), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(echoClaims()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
