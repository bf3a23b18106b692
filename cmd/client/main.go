package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-login-flow/internal/adapter"
	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/flow"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-login-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	executor := flow.NewExecutor(authAdapter, cfg.Flow.ResultDelay, log)
	store := flow.NewStore(flow.InitialState(), executor, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.Start(ctx)
	defer store.Stop()

	ui, err := tui.New(store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	user, err := ui.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("client run error")
	}

	log.Info().Str("user_id", user.UserID).Str("login", user.Login).Msg("login flow finished")
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Login)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
