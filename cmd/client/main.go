package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-issuer/internal/adapter"
	"github.com/MKhiriev/go-wallet-issuer/internal/client"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("issuerctl")

	if len(os.Args) > 1 && os.Args[1] == "--build-info" {
		printBuildInfo()
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	issuer, err := adapter.NewHTTPIssuerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create issuer adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(issuer, os.Stdin, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
