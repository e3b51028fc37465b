package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wellbeing-backend/config"
	"wellbeing-backend/controllers"
	"wellbeing-backend/repository"
	"wellbeing-backend/routes"
	"wellbeing-backend/services"
	"wellbeing-backend/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	genSecret := flag.Bool("gen-jwt-secret", false, "print a random JWT_SECRET and exit")
	flag.Parse()

	switch {
	case *hashPassword != "":
		hash, err := utils.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	case *genSecret:
		fmt.Println(utils.GenerateJWTSecret())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}
	store := repository.New(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if cfg.SeedServices {
		seeded, err := store.SeedServices(context.Background())
		if err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		if seeded > 0 {
			logger.Info().Int("count", seeded).Msg("Seeded default services")
		}
	}

	var sms services.SMSSender
	if cfg.SMSEnabled() {
		sms = services.NewTwilioSMS(cfg)
	}
	notifier := services.NewNotifier(cfg, services.NewMailer(cfg, logger), sms, store, logger)

	if cfg.DigestEnabled {
		scheduler, err := services.NewDigestService(store, notifier, logger).Start(cfg.DigestCron)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	r, err := routes.SetupRouter(routes.Dependencies{
		Config:      cfg,
		Logger:      logger,
		Submissions: controllers.NewSubmissionHandler(store, notifier, logger),
		Pages:       controllers.NewPageHandler(store, cfg, logger),
		Admin:       controllers.NewAdminHandler(store, cfg, logger),
	})
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printRoutes(r *gin.Engine, logger zerolog.Logger) {
	for _, route := range r.Routes() {
		logger.Debug().Str("method", route.Method).Str("path", route.Path).Msg("Route")
	}
}
