package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/infrastructure/migration"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/pkg/log"
)

func main() {
	seedAdmin := flag.Bool("seed-admin", false, "cria o administrador inicial a partir de ADMIN_NAME, ADMIN_EMAIL e ADMIN_PASSWORD")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração")
	}

	if *seedAdmin {
		name := os.Getenv("ADMIN_NAME")
		if name == "" {
			name = "Administrador"
		}

		created, err := migration.SeedAdmin(ctx, conn.DB, name, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"))
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar administrador inicial")
		}
		if created {
			logrus.Info("Administrador inicial criado")
		} else {
			logrus.Info("Administrador inicial já existia, nada a fazer")
		}
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
