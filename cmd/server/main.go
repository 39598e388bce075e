package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/handler"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/internal/server"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/workers"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-wallet-issuer")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	m := metrics.New()

	deps, err := newDependencies(cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating signers and push transports")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), deps, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, m.Handler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	ws := workers.NewWorkers(services, cfg.Workers, log)
	ws.Run(workersCtx)

	srv.RunServer()

	stopWorkers()
	ws.Wait()
	services.NotificationService.Stop()

	log.Info().Msg("issuer stopped")
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
