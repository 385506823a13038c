package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/castnavi-api/internal/api/handler/router"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/castnavi-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	catalogmocks "github.com/vfg2006/castnavi-api/internal/usecases/catalog/mocks"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	managemocks "github.com/vfg2006/castnavi-api/internal/usecases/managing/mocks"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	reviewmocks "github.com/vfg2006/castnavi-api/internal/usecases/reviewing/mocks"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"github.com/vfg2006/castnavi-api/pkg/log"
	"github.com/vfg2006/castnavi-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func serve(routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

// asStaff simula o usuário autenticado que o AuthMiddleware colocaria no contexto
func asStaff(req *http.Request) *http.Request {
	claims := &domain.Claims{UserID: 7, UserName: "Equipe", UserRoleID: domain.RoleStaff}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestListCasts(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(m *catalogmocks.MockCatalogService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "Repassa areaId e limit",
			query: "?areaId=area-1&limit=5",
			setupMock: func(m *catalogmocks.MockCatalogService) {
				m.EXPECT().ListCastsByArea(gomock.Any(), "area-1", 5).Return([]*domain.CastWithPrice{
					{Cast: &domain.Cast{ID: "c1", Name: "Yui"}, PriceRange: "1,350円 ～ 6,750円"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Limit inválido",
			query:          "?areaId=area-1&limit=abc",
			setupMock:      func(m *catalogmocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Sem areaId",
			query: "",
			setupMock: func(m *catalogmocks.MockCatalogService) {
				m.EXPECT().ListCastsByArea(gomock.Any(), "", 0).Return(nil,
					catalog.NewCatalogError(catalog.ErrAreaIDRequired, apiErrors.ErrMissingRequiredData, "areaId é obrigatório"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := catalogmocks.NewMockCatalogService(ctrl)
			tt.setupMock(service)

			rec := serve(Catalog(service), httptest.NewRequest(http.MethodGet, "/v1/casts"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
				return
			}

			var casts []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &casts))
			require.Len(t, casts, 1)
			assert.Equal(t, "Yui", casts[0]["name"])
			assert.Equal(t, "1,350円 ～ 6,750円", casts[0]["priceRange"])
		})
	}
}

func TestGetCast_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().GetCastDetail(gomock.Any(), "inexistente").Return(nil,
		catalog.NewCatalogError(catalog.ErrCastNotFound, apiErrors.ErrResourceNotFound, "Cast não encontrada"))

	rec := serve(Catalog(service), httptest.NewRequest(http.MethodGet, "/v1/casts/inexistente", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
	assert.Equal(t, "Cast não encontrada", apiErr.Message)
}

func TestListAreas_PrefectureFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().ListAreas(gomock.Any(), "東京都").Return([]*domain.Area{{ID: "a1", Name: "歌舞伎町"}}, nil)

	rec := serve(Catalog(service), httptest.NewRequest(http.MethodGet, "/v1/areas?prefecture=%E6%9D%B1%E4%BA%AC%E9%83%BD", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "歌舞伎町")
}

func TestCreateLike(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *reviewmocks.MockReviewService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Primeira curtida usa o IP do proxy",
			body: `{"castId":"c1"}`,
			setupMock: func(m *reviewmocks.MockReviewService) {
				m.EXPECT().Like(gomock.Any(), "c1", "203.0.113.7").Return(&domain.Like{ID: "l1", CastID: "c1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Curtida duplicada",
			body: `{"castId":"c1"}`,
			setupMock: func(m *reviewmocks.MockReviewService) {
				m.EXPECT().Like(gomock.Any(), "c1", "203.0.113.7").Return(nil,
					reviewing.NewReviewError(reviewing.ErrAlreadyLiked, apiErrors.ErrAlreadyLiked, "c1", ""))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Already liked",
		},
		{
			name:           "Corpo inválido",
			body:           `{castId`,
			setupMock:      func(m *reviewmocks.MockReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Formato de requisição inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reviewmocks.NewMockReviewService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/likes", strings.NewReader(tt.body))
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

			rec := serve(Reviews(service), req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeError(t, rec).Message)
			}
		})
	}
}

func TestGetLikeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reviewmocks.NewMockReviewService(ctrl)
	service.EXPECT().GetLikeStatus(gomock.Any(), "c1", "198.51.100.2").Return(&domain.LikeStatus{TotalLikes: 4, HasLiked: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/likes?castId=c1", nil)
	req.Header.Set("X-Real-IP", "198.51.100.2")
	rec := serve(Reviews(service), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalLikes":4,"hasLiked":true}`, rec.Body.String())
}

func TestCreateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reviewmocks.NewMockReviewService(ctrl)
	service.EXPECT().CreateReview(gomock.Any(), &domain.CreateReviewRequest{
		CastID: "c1", CuteScore: 5, TalkScore: 4, PriceScore: 3,
	}, "unknown").Return(&domain.Review{ID: "r1", CastID: "c1", CuteScore: 5, TalkScore: 4, PriceScore: 3}, nil)

	body := `{"castId":"c1","cuteScore":5,"talkScore":4,"priceScore":3}`
	rec := serve(Reviews(service), httptest.NewRequest(http.MethodPost, "/v1/reviews", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ip_address")
}

func TestLogin(t *testing.T) {
	cfg := config.Auth{CookieName: "castnavi_session", CookieSecure: true}
	expiresAt := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *authmocks.MockAuthenticator)
		expectedStatus int
		expectCookie   bool
	}{
		{
			name: "Login válido grava cookie",
			body: `{"email":"admin@castnavi.jp","password":"secreta"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "admin@castnavi.jp", "secreta").
					Return(&domain.LoginResponse{Token: "jwt-token", ExpiresAt: expiresAt}, nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "Credenciais inválidas",
			body: `{"email":"admin@castnavi.jp","password":"errada"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "admin@castnavi.jp", "errada").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Senha ausente",
			body:           `{"email":"admin@castnavi.jp"}`,
			setupMock:      func(m *authmocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setupMock(service)

			rec := serve(Authentication(service, cfg), httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			cookies := rec.Result().Cookies()
			if !tt.expectCookie {
				assert.Empty(t, cookies)
				return
			}

			require.Len(t, cookies, 1)
			assert.Equal(t, "castnavi_session", cookies[0].Name)
			assert.Equal(t, "jwt-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
			assert.Contains(t, rec.Body.String(), "jwt-token")
		})
	}
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := serve(Authentication(authmocks.NewMockAuthenticator(ctrl), config.Auth{CookieName: "castnavi_session"}),
		httptest.NewRequest(http.MethodPost, "/v1/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestUpdateTimePrice_UsesPathParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := managemocks.NewMockManageService(ctrl)
	service.EXPECT().UpdateTimePrice(gomock.Any(), &domain.SaveTimePriceRequest{
		ID: "tp1", ShopID: "s1", StartTime: "20:00", EndTime: "01:00", Price: 5000,
	}).Return(&domain.TimePrice{ID: "tp1", ShopID: "s1", StartTime: "20:00", EndTime: "01:00", Price: 5000}, nil)

	body := `{"start_time":"20:00","end_time":"01:00","price":5000}`
	rec := serve(Prices(service), asStaff(httptest.NewRequest(http.MethodPut, "/v1/admin/shops/s1/prices/time/tp1", strings.NewReader(body))))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveTax_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := managemocks.NewMockManageService(ctrl)
	service.EXPECT().SaveTax(gomock.Any(), "s1", gomock.Any()).Return(nil,
		managing.NewManageError(managing.ErrInvalidTaxRate, apiErrors.ErrInvalidFormat, ""))

	rec := serve(Prices(service), asStaff(httptest.NewRequest(http.MethodPut, "/v1/admin/shops/s1/prices/tax", strings.NewReader(`{"price":1.5}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, managing.ErrInvalidTaxRate.Error(), decodeError(t, rec).Message)
}

func TestAdminDeleteCast(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := managemocks.NewMockManageService(ctrl)
	service.EXPECT().DeleteCast(gomock.Any(), "c1").Return(nil)

	rec := serve(Admin(service, config.Storage{}), asStaff(httptest.NewRequest(http.MethodDelete, "/v1/admin/casts/c1", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminRoutes_RequireAuthenticatedUser(t *testing.T) {
	tests := []struct {
		name   string
		routes func(service managing.ManageService) []router.Route
		req    func() *http.Request
	}{
		{
			name:   "Remoção de cast sem usuário",
			routes: func(service managing.ManageService) []router.Route { return Admin(service, config.Storage{}) },
			req:    func() *http.Request { return httptest.NewRequest(http.MethodDelete, "/v1/admin/casts/c1", nil) },
		},
		{
			name:   "Alteração de imposto sem usuário",
			routes: Prices,
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPut, "/v1/admin/shops/s1/prices/tax", strings.NewReader(`{"price":0.1}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := managemocks.NewMockManageService(ctrl)

			rec := serve(tt.routes(service), tt.req())

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
		})
	}
}

func multipartImage(t *testing.T, castID, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if castID != "" {
		require.NoError(t, writer.WriteField("castId", castID))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="Foto.PNG"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadCastImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("0", 32))

	t.Run("Envia imagem com tipo detectado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managemocks.NewMockManageService(ctrl)
		service.EXPECT().UploadCastImage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input *managing.UploadImageInput) (*domain.UploadedImage, error) {
				assert.Equal(t, "c1", input.CastID)
				assert.Equal(t, "Foto.PNG", input.Filename)
				assert.Equal(t, "image/png", input.ContentType)
				assert.Equal(t, int64(len(png)), input.Size)
				return &domain.UploadedImage{Key: "casts/c1/abc.png", URL: "https://cdn/casts/c1/abc.png"}, nil
			})

		body, contentType := multipartImage(t, "c1", "", png)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/casts/upload", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve(Admin(service, config.Storage{MaxUploadBytes: 1 << 20}), asStaff(req))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "casts/c1/abc.png")
	})

	t.Run("Sem arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managemocks.NewMockManageService(ctrl)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("castId", "c1"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/casts/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := serve(Admin(service, config.Storage{}), asStaff(req))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("Arquivo acima do limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managemocks.NewMockManageService(ctrl)

		large := bytes.Repeat([]byte("a"), 64)
		body, contentType := multipartImage(t, "", "image/jpeg", large)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/casts/upload", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve([]router.Route{{
			Path:    "/v1/admin/casts/upload",
			Method:  http.MethodPost,
			Handler: uploadWithOverhead(service, 10),
		}}, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

// uploadWithOverhead reduz o limite total para exercitar o MaxBytesReader
func uploadWithOverhead(service managing.ManageService, limit int64) http.Handler {
	handler := UploadCastImage(service, limit)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		handler(w, r)
	})
}

type fakeCronJob struct {
	triggered bool
	accept    bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered = true
	return f.accept
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"enabled": true}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		accept         bool
		expectedStatus int
		triggered      bool
	}{
		{name: "Dispara limpeza de imagens", path: "/v1/admin/cron/image-janitor/run", accept: true, expectedStatus: http.StatusAccepted, triggered: true},
		{name: "Limpeza já em execução", path: "/v1/admin/cron/image-janitor/run", accept: false, expectedStatus: http.StatusConflict, triggered: true},
		{name: "Tipo desconhecido", path: "/v1/admin/cron/meta/run", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{accept: tt.accept}
			routes := []router.Route{{
				Path:    "/v1/admin/cron/:type/run",
				Method:  http.MethodPost,
				Handler: RunCronJob(CronJobServices{CronJobTypeImageJanitor: job}),
			}}

			rec := serve(routes, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.triggered, job.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	routes := []router.Route{{
		Path:    "/v1/admin/cron/status",
		Method:  http.MethodGet,
		Handler: GetCronStatus(CronJobServices{CronJobTypeImageJanitor: &fakeCronJob{}}),
	}}

	rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/admin/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"image-janitor":{"enabled":true}}`, rec.Body.String())
}

type pingerFunc func() error

func (f pingerFunc) Ping(_ context.Context) error { return f() }

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(pingerFunc(func() error { return nil })), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Healthcheck(pingerFunc(func() error { return assert.AnError })), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_NotFound(t *testing.T) {
	rec := serve(nil, httptest.NewRequest(http.MethodGet, "/v1/inexistente", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}
