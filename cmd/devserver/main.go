package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log := logger.NewLogger("go-login-devserver")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := server.NewHandler(cfg, log)

	demoUser, err := handler.SeedUser("validUser", "Demo User", "longenoughpw1")
	if err != nil {
		log.Fatal().Err(err).Msg("seed demo account")
	}
	log.Info().
		Str("login", demoUser.Login).
		Str("user_id", demoUser.UserID).
		Msg("demo account seeded, password: longenoughpw1")

	srv := server.New(cfg, handler, log)

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-done
	log.Info().Msg("shutting down")
	srv.Shutdown(shutdownTimeout)
}
