package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-novel-hub/internal/adapter"
	"github.com/MKhiriev/go-novel-hub/internal/client"
	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("novel-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("novel-client", flag.ExitOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", cfg.Adapter.HTTPAddress, "server base URL (NOVEL_SERVER_URL)")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "access token from a previous login (NOVEL_TOKEN)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "request timeout (NOVEL_REQUEST_TIMEOUT)")
	showBuild := fs.Bool("build-info", false, "print build information and exit")
	_ = fs.Parse(os.Args[1:])

	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	if *showBuild {
		fmt.Println(build)
		return
	}

	if err = cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid client config")
	}

	api, err := adapter.NewHTTPNovelAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	session, err := client.NewSession(cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, session, os.Stdout, client.TerminalPasswordReader(os.Stdin, os.Stderr), build, log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
