package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/internal/api/handler"
	"github.com/vfg2006/castnavi-api/internal/api/handler/router"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	"github.com/vfg2006/castnavi-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as dependências expostas pela API
type Services struct {
	DB             handler.Pinger
	Authenticator  authenticating.Authenticator
	Catalog        catalog.CatalogService
	Reviews        reviewing.ReviewService
	Manage         managing.ManageService
	CronJobs       handler.CronJobServices
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	rt := NewHandler(cfg, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithMetrics(services.Metrics),
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Metrics(cfg.Metrics, services.MetricsHandler)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, cfg.Auth)...),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Reviews(services.Reviews)...),
		router.WithRoutes(handler.Admin(services.Manage, cfg.Storage)...),
		router.WithRoutes(handler.Prices(services.Manage)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		services.Metrics.MetricsMiddleware(),
		middleware.AuthMiddleware(services.Authenticator, cfg.Auth.CookieName),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
