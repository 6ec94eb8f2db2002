package main

import (
	"context"
	"dmv/internal/api"
	"dmv/internal/config"
	"dmv/internal/facility"
	"dmv/internal/logging"
	"dmv/internal/metrics"
	"dmv/internal/repository"
	"dmv/internal/service"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.FromEnv()
	logging.Init(cfg.Development)

	facilityRepo := repository.NewFacilityRepository()
	vehicleRepo := repository.NewVehicleRepository()
	registrantRepo := repository.NewRegistrantRepository()
	adminRepo := repository.NewAdminAuthRepository()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sender := service.NewSenderService(service.NewSendGridMailer(cfg), service.NewTwilioSMS(cfg))
	opts := []service.AgencyOption{service.WithNotifier(sender)}
	if stripeSvc := service.NewStripeService(cfg); stripeSvc != nil {
		opts = append(opts, service.WithFeeCheckout(stripeSvc))
	} else {
		logging.Warn().Msg("STRIPE_SECRET_KEY not set, fee checkout disabled")
	}

	agencySvc := service.NewAgencyService(facilityRepo, vehicleRepo, registrantRepo, m, opts...)
	adminSvc := service.NewAdminService(facilityRepo, facility.SystemClock)
	adminAuthSvc := service.NewAdminAuthService(adminRepo, cfg.JWTSecret)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := adminAuthSvc.CreateAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logging.Logger().Fatal().Err(err).Msg("seeding admin account")
		}
		logging.Info().Str("email", cfg.AdminEmail).Msg("admin account seeded")
	} else {
		logging.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, admin endpoints unusable")
	}

	jobSvc := service.NewJobService(facilityRepo, facility.SystemClock)
	c := cron.New()
	if err := jobSvc.Schedule(c, cfg.FeeReportSchedule); err != nil {
		logging.Logger().Fatal().Err(err).Msg("scheduling fee report")
	}
	c.Start()

	r := api.NewRouter(api.Handlers{
		Facility:   api.NewFacilityHandler(agencySvc, adminSvc),
		Vehicle:    api.NewVehicleHandler(agencySvc),
		Registrant: api.NewRegistrantHandler(agencySvc),
		AdminAuth:  api.NewAdminAuthHandler(adminAuthSvc),
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, adminAuthSvc)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.New(logging.Logger(), "", 0)),
		handlers.PrintRecoveryStack(cfg.Development),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.CombinedLoggingHandler(logging.Logger(), recovery(cors(r))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger().Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server shutdown")
	}
	<-c.Stop().Done()
	sender.Wait()
	jobSvc.ReportCollectedFees()
}
