package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/Ahmad007-lin/PasswordChecker/internal/config"
	"github.com/Ahmad007-lin/PasswordChecker/internal/corpus"
	"github.com/Ahmad007-lin/PasswordChecker/internal/handler/health"
	"github.com/Ahmad007-lin/PasswordChecker/internal/handler/password"
	promhandler "github.com/Ahmad007-lin/PasswordChecker/internal/handler/prometheus"
	"github.com/Ahmad007-lin/PasswordChecker/internal/router"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/generator"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/strength"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/logger"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Configure(&logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	set, err := loadCorpus(cfg.Strength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load common-password corpus")
	}
	log.Info().Int("entries", set.Len()).Msg("common-password corpus loaded")

	promH := promhandler.New()
	m := metrics.New("passcheck", promH.Registry())

	strengthSvc := strength.NewService(set)
	generatorSvc := generator.NewService(cfg.Generator.MinZxcvbnScore, m)

	passwordH := password.NewHandler(strengthSvc, generatorSvc, password.Config{
		DefaultLength: cfg.Generator.DefaultLength,
		MaxLength:     cfg.Generator.MaxLength,
	}, m)
	healthH := health.NewHandler(set)

	routerCfg := router.DefaultConfig()
	routerCfg.CORS.AllowOrigins = cfg.Security.AllowedOrigins
	routerCfg.RateLimitEnabled = cfg.RateLimit.Enabled
	routerCfg.RateLimit.RPS = cfg.RateLimit.RPS
	routerCfg.RateLimit.Burst = cfg.RateLimit.Burst
	routerCfg.MetricsEnabled = cfg.Monitoring.Enabled
	routerCfg.MetricsPath = cfg.Monitoring.Path

	r := router.New(passwordH, healthH, promH, routerCfg)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

// loadCorpus builds the denylist from the configured file, or the
// embedded default, plus any per-deployment extra entries.
func loadCorpus(cfg config.StrengthConfig) (*corpus.Set, error) {
	set := corpus.Default()
	if cfg.CorpusFile != "" {
		var err error
		set, err = corpus.FromFile(cfg.CorpusFile)
		if err != nil {
			return nil, err
		}
	}
	set.Add(cfg.ExtraBlocked...)
	return set, nil
}
