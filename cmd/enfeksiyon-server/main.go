package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SelinElifGur/enfeksiyon/internal/config"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/culture"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/intake"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/lab"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/patient"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/report"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/treatment"
	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
	"github.com/SelinElifGur/enfeksiyon/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "enfeksiyon-server",
		Short: "Infection ward patient tracking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and columns, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := context.Background()
			conn, err := db.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := db.EnsureSchema(ctx, conn); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.DBPath).Msg("schema up to date")
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a patient summary report as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, err := cmd.Flags().GetInt64("patient")
			if err != nil {
				return err
			}
			outPath, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := context.Background()
			conn, err := db.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := db.EnsureSchema(ctx, conn); err != nil {
				return err
			}

			svc := report.NewService(
				patient.NewRepo(conn),
				culture.NewRepo(conn),
				treatment.NewRepo(conn),
				lab.NewRepo(conn),
				intake.NewRepo(conn),
			)
			sum, err := svc.Summary(ctx, patientID)
			if err != nil {
				return fmt.Errorf("patient %d: %w", patientID, err)
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := report.RenderHTML(out, sum); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().Int64("patient", 0, "patient id")
	cmd.Flags().String("out", "report.html", "output file path")
	cmd.MarkFlagRequired("patient")
	return cmd
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()
	logger.Info().Str("path", cfg.DBPath).Msg("database open")

	// Schema upkeep runs on every boot. Existing files gain any columns
	// added since they were created; fresh files get the full layout.
	if err := db.EnsureSchema(ctx, conn); err != nil {
		logger.Fatal().Err(err).Msg("schema upkeep failed")
	}

	e := newRouter(conn, cfg, logger)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newRouter wires every repository, service and handler onto a fresh
// echo instance. Split out of runServer so tests can drive the full
// HTTP surface against a temporary database.
func newRouter(conn *sql.DB, cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(conn))

	apiV1 := e.Group("/api/v1")

	runner := db.Runner{Conn: conn}

	patientRepo := patient.NewRepo(conn)
	cultureRepo := culture.NewRepo(conn)
	treatmentRepo := treatment.NewRepo(conn)
	labRepo := lab.NewRepo(conn)
	intakeRepo := intake.NewRepo(conn)

	// Deleting a patient sweeps every dependent store in one transaction.
	patientSvc := patient.NewService(patientRepo, runner,
		cultureRepo, treatmentRepo, labRepo, intakeRepo)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)

	cultureSvc := culture.NewService(cultureRepo, runner)
	culture.NewHandler(cultureSvc).RegisterRoutes(apiV1)

	treatmentSvc := treatment.NewService(treatmentRepo)
	treatment.NewHandler(treatmentSvc).RegisterRoutes(apiV1)

	labSvc := lab.NewService(labRepo)
	lab.NewHandler(labSvc).RegisterRoutes(apiV1)

	intakeSvc := intake.NewService(intakeRepo)
	intake.NewHandler(intakeSvc).RegisterRoutes(apiV1)

	reportSvc := report.NewService(patientRepo, cultureRepo, treatmentRepo, labRepo, intakeRepo)
	report.NewHandler(reportSvc).RegisterRoutes(apiV1)

	return e
}
