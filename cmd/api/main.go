package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/courtside/pickleball-api/internal/config"
	"github.com/courtside/pickleball-api/internal/email"
	"github.com/courtside/pickleball-api/internal/handler"
	athleteHandler "github.com/courtside/pickleball-api/internal/handler/athlete"
	authHandler "github.com/courtside/pickleball-api/internal/handler/auth"
	clubHandler "github.com/courtside/pickleball-api/internal/handler/club"
	courtHandler "github.com/courtside/pickleball-api/internal/handler/court"
	geocodeHandler "github.com/courtside/pickleball-api/internal/handler/geocode"
	tournamentHandler "github.com/courtside/pickleball-api/internal/handler/tournament"
	"github.com/courtside/pickleball-api/internal/middleware"
	"github.com/courtside/pickleball-api/internal/repository/postgres"
	"github.com/courtside/pickleball-api/internal/router"
	athleteService "github.com/courtside/pickleball-api/internal/service/athlete"
	authService "github.com/courtside/pickleball-api/internal/service/auth"
	clubService "github.com/courtside/pickleball-api/internal/service/club"
	courtService "github.com/courtside/pickleball-api/internal/service/court"
	geocodeService "github.com/courtside/pickleball-api/internal/service/geocode"
	tournamentService "github.com/courtside/pickleball-api/internal/service/tournament"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	base := postgres.NewBaseRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(base)
	clubRepo := postgres.NewClubRepository(base)
	courtRepo := postgres.NewCourtRepository(base)
	athleteRepo := postgres.NewAthleteRepository(base)
	userRepo := postgres.NewUserRepository(base)

	m := metrics.NewMetrics("pickleball")
	notifier := email.NewService(cfg.SMTP)

	tournamentSvc := tournamentService.NewService(tournamentRepo, notifier, cfg.Catalog.CacheTTL, m)
	clubSvc := clubService.NewService(clubRepo, notifier, cfg.Catalog.CacheTTL, m)
	courtSvc := courtService.NewService(courtRepo, cfg.Catalog.CacheTTL, m)
	athleteSvc := athleteService.NewService(athleteRepo)
	authSvc := authService.NewService(userRepo, cfg.JWT)
	geocodeSvc := geocodeService.NewService(cfg.Geocoder, m)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler()
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		tournamentHandler.NewHandler(tournamentSvc),
		clubHandler.NewHandler(clubSvc),
		courtHandler.NewHandler(courtSvc),
		athleteHandler.NewHandler(athleteSvc),
		geocodeHandler.NewHandler(geocodeSvc),
		h,
		router.RouterConfig{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "pickleball_http",
			CatalogTTL:    cfg.Catalog.CacheTTL,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
