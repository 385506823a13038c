package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/storage"
	"github.com/vfg2006/castnavi-api/internal/api"
	"github.com/vfg2006/castnavi-api/internal/api/handler"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/scheduler"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	"github.com/vfg2006/castnavi-api/pkg/log"
	"github.com/vfg2006/castnavi-api/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	imageStore, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o armazenamento de imagens")
	}

	areaRepo := repository.NewAreaRepository(pgConn)
	shopRepo := repository.NewShopRepository(pgConn)
	castRepo := repository.NewCastRepository(pgConn)
	priceRepo := repository.NewPriceRepository(pgConn)
	reviewRepo := repository.NewReviewRepository(pgConn)
	likeRepo := repository.NewLikeRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	catalogService := catalog.NewService(areaRepo, castRepo, priceRepo, reviewRepo, imageStore, cfg.Catalog)
	reviewService := reviewing.NewService(reviewRepo, likeRepo)
	manageService := managing.NewService(areaRepo, shopRepo, castRepo, priceRepo, imageStore, cfg.Storage)

	imageJanitorService := scheduler.NewImageJanitorService(castRepo, imageStore, cfg.ImageJanitor)
	if err := imageJanitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da limpeza de imagens")
	}

	metrics, metricsHandler := setupMetrics(cfg.Metrics, pgConn)

	server, err := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Catalog:       catalogService,
		Reviews:       reviewService,
		Manage:        manageService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeImageJanitor: imageJanitorService,
		},
		Metrics:        metrics,
		MetricsHandler: metricsHandler,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// setupMetrics cria um registry próprio com métricas de runtime, do pool do
// banco e das requisições HTTP
func setupMetrics(cfg config.Metrics, pgConn *postgres.Connection) (*middleware.Metrics, http.Handler) {
	if !cfg.Enabled {
		logrus.Info("Métricas desabilitadas por configuração")
		return nil, nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(pgConn.DB, "castnavi"),
	)

	logrus.WithField("path", cfg.Path).Info("Métricas habilitadas")

	return middleware.NewMetrics(registry), promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
