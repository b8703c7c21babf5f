package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/domain/clinical"
	"github.com/clinic/clinic/internal/domain/dashboard"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/metrics"
	"github.com/clinic/clinic/internal/platform/middleware"
	"github.com/clinic/clinic/internal/platform/seed"
	"github.com/clinic/clinic/internal/platform/validation"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func statsCmd() *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary of the seeded clinic as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, zerolog.Nop(), prometheus.NewRegistry())
			if err != nil {
				return err
			}
			if today == "" {
				today = a.today()
			}
			sum, err := a.dashboard.Summary(cmd.Context(), today)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "day to summarise (YYYY-MM-DD), defaults to today in CLINIC_TIMEZONE")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		roles   []string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET is required to sign tokens")
			}
			tok, err := auth.IssueToken(jwtConfig(cfg), subject, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject (staff member id)")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "role to grant, repeatable (admin, physician, nurse, receptionist)")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	return auth.JWTConfig{
		Issuer:     cfg.AuthIssuer,
		SigningKey: []byte(cfg.AuthSecret),
	}
}

// app is the wired server: stores, services and the echo instance routing
// to them.
type app struct {
	echo      *echo.Echo
	stores    seed.Stores
	dashboard *dashboard.Service
	today     func() string
}

func newApp(cfg *config.Config, logger zerolog.Logger, reg *prometheus.Registry) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	today := func() string {
		return validation.Today(time.Now(), loc)
	}

	// Stores
	stores := seed.Stores{
		Patients:       identity.NewPatientRepoMem(),
		Doctors:        identity.NewDoctorRepoMem(),
		Appointments:   scheduling.NewAppointmentRepoMem(),
		MedicalRecords: clinical.NewMedicalRecordRepoMem(),
	}
	if cfg.SeedData {
		if _, err := seed.Load(context.Background(), stores, logger); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	// Services
	identitySvc := identity.NewService(stores.Patients, stores.Doctors, logger)
	schedulingSvc := scheduling.NewService(stores.Appointments, identitySvc, logger)
	clinicalSvc := clinical.NewService(stores.MedicalRecords, identitySvc, logger)
	dashboardSvc := dashboard.NewService(identitySvc, schedulingSvc, clinicalSvc, logger)

	// Metrics
	httpMetrics := metrics.NewHTTPMetrics(reg)
	metrics.RegisterCollectionSizes(reg, collectionSizes(stores)...)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Metrics(httpMetrics))
	e.Use(middleware.SecurityHeaders(cfg.TLSEnabled))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}))

	// Health check and metrics stay outside auth
	e.GET("/health", healthHandler(stores))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	// Auth middleware
	if cfg.IsDev() {
		logger.Warn().Msg("development mode: requests without a bearer token run as admin")
		apiV1.Use(auth.DevAuthMiddleware(jwtConfig(cfg)))
	} else {
		apiV1.Use(auth.JWTMiddleware(jwtConfig(cfg)))
	}

	identity.NewHandler(identitySvc, today).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedulingSvc, today).RegisterRoutes(apiV1)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(dashboardSvc, today).RegisterRoutes(apiV1)

	return &app{
		echo:      e,
		stores:    stores,
		dashboard: dashboardSvc,
		today:     today,
	}, nil
}

func collectionSizes(stores seed.Stores) []metrics.CollectionSize {
	counter := func(count func(context.Context) (int, error)) func() int {
		return func() int {
			n, _ := count(context.Background())
			return n
		}
	}
	return []metrics.CollectionSize{
		{Name: "patients", Len: counter(stores.Patients.Count)},
		{Name: "doctors", Len: counter(stores.Doctors.Count)},
		{Name: "appointments", Len: counter(stores.Appointments.Count)},
		{Name: "medical_records", Len: counter(stores.MedicalRecords.Count)},
	}
}

func healthHandler(stores seed.Stores) echo.HandlerFunc {
	sizes := collectionSizes(stores)
	return func(c echo.Context) error {
		collections := make(map[string]int, len(sizes))
		for _, s := range sizes {
			collections[s.Name] = s.Len()
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"version":     version,
			"collections": collections,
		})
	}
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := newApp(cfg, logger, reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}
	e := a.echo

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Bool("tls", cfg.TLSEnabled).Msg("starting server")
		var err error
		if cfg.TLSEnabled {
			err = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
