package handler

import (
	"net/http"

	"github.com/vfg2006/castnavi-api/internal/api/handler/router"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	"github.com/vfg2006/castnavi-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

var (
	staffOrAdmin = middlewares{middleware.StaffOrAdmin()}
	adminOnly    = middlewares{middleware.AdminOnly()}
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(cfg config.Metrics, handler http.Handler) []router.Route {
	if !cfg.Enabled || handler == nil {
		return nil
	}

	return []router.Route{
		{
			Path:    cfg.Path,
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg config.Auth) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service, cfg),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(cfg),
		},
		{
			Path:        "/v1/admin/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: adminOnly,
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/prefectures",
			Method:  http.MethodGet,
			Handler: ListPrefectures(service),
		},
		{
			Path:    "/v1/areas",
			Method:  http.MethodGet,
			Handler: ListAreas(service),
		},
		{
			Path:    "/v1/areas/:id",
			Method:  http.MethodGet,
			Handler: GetArea(service),
		},
		{
			Path:    "/v1/casts",
			Method:  http.MethodGet,
			Handler: ListCasts(service),
		},
		{
			Path:    "/v1/casts/:id",
			Method:  http.MethodGet,
			Handler: GetCast(service),
		},
	}
}

func Reviews(service reviewing.ReviewService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reviews",
			Method:  http.MethodGet,
			Handler: ListReviews(service),
		},
		{
			Path:    "/v1/reviews",
			Method:  http.MethodPost,
			Handler: CreateReview(service),
		},
		{
			Path:    "/v1/likes",
			Method:  http.MethodGet,
			Handler: GetLikeStatus(service),
		},
		{
			Path:    "/v1/likes",
			Method:  http.MethodPost,
			Handler: CreateLike(service),
		},
	}
}

func Admin(service managing.ManageService, storageCfg config.Storage) []router.Route {
	return []router.Route{
		{Path: "/v1/admin/areas", Method: http.MethodGet, Handler: AdminListAreas(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/areas", Method: http.MethodPost, Handler: AdminCreateArea(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/areas/:id", Method: http.MethodPut, Handler: AdminUpdateArea(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/areas/:id", Method: http.MethodDelete, Handler: AdminDeleteArea(service), Middlewares: staffOrAdmin},

		{Path: "/v1/admin/shops", Method: http.MethodGet, Handler: AdminListShops(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/shops", Method: http.MethodPost, Handler: AdminCreateShop(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/shops/:id", Method: http.MethodPut, Handler: AdminUpdateShop(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/shops/:id", Method: http.MethodDelete, Handler: AdminDeleteShop(service), Middlewares: staffOrAdmin},

		{Path: "/v1/admin/casts", Method: http.MethodGet, Handler: AdminListCasts(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/casts", Method: http.MethodPost, Handler: AdminCreateCast(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/casts/upload", Method: http.MethodPost, Handler: UploadCastImage(service, storageCfg.MaxUploadBytes), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/casts/:id", Method: http.MethodPut, Handler: AdminUpdateCast(service), Middlewares: staffOrAdmin},
		{Path: "/v1/admin/casts/:id", Method: http.MethodDelete, Handler: AdminDeleteCast(service), Middlewares: staffOrAdmin},
	}
}

func Prices(service managing.ManageService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/shops/:id/prices",
			Method:      http.MethodGet,
			Handler:     GetShopPrices(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/shops/:id/prices/time",
			Method:      http.MethodPost,
			Handler:     CreateTimePrice(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/shops/:id/prices/time/:priceId",
			Method:      http.MethodPut,
			Handler:     UpdateTimePrice(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/shops/:id/prices/time/:priceId",
			Method:      http.MethodDelete,
			Handler:     DeleteTimePrice(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/shops/:id/prices/nomination",
			Method:      http.MethodPut,
			Handler:     SaveNomination(service),
			Middlewares: staffOrAdmin,
		},
		{
			Path:        "/v1/admin/shops/:id/prices/tax",
			Method:      http.MethodPut,
			Handler:     SaveTax(service),
			Middlewares: staffOrAdmin,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
