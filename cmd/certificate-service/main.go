package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/config"
	"github.com/studentcert/studentcert/internal/certificate/controller"
	"github.com/studentcert/studentcert/internal/certificate/repository"
	"github.com/studentcert/studentcert/internal/certificate/service"
	circuitbreaker "github.com/studentcert/studentcert/internal/infrastructure/circuit-breaker"
	"github.com/studentcert/studentcert/internal/infrastructure/database/postgres"
	"github.com/studentcert/studentcert/internal/infrastructure/tracing"
	localmiddleware "github.com/studentcert/studentcert/internal/middleware"
	"github.com/studentcert/studentcert/pkg/response"
	pkgvalidator "github.com/studentcert/studentcert/pkg/validator"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := postgres.GetDBInstance(conf.PostgreSQLConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	traceProvider, err := tracing.InitTracing(conf.TracingConfig.CollectorHost, "certificate-service")
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	e := echo.New()
	e.Validator = pkgvalidator.NewRequestValidator()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("certificate-service")
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", conf.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("")
	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	cb := circuitbreaker.CreateCircuitBreaker("certificate-service")

	repo := repository.CreateNewRepository(db)
	authClient := service.CreateAuthClient(conf.AuthServiceHost, cb)

	certSvc := service.CreateNewService(repo, authClient)
	fileSvc := service.CreateFileService(conf.UploadDir)
	pdfSvc := service.CreatePdfService(repo, conf.PdfDir)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(2, 0, 0))),
		gocron.NewTask(pdfSvc.CleanUpTempFiles),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule pdf cleanup job")
	}

	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}()

	controller.CreateController(g, certSvc, fileSvc, pdfSvc, conf.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", conf.ServicePort)))
}
