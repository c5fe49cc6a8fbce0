package main

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/config"
	kafkainfra "github.com/studentcert/studentcert/internal/infrastructure/message-queue/kafka"
	"github.com/studentcert/studentcert/internal/notification/service"
	"github.com/studentcert/studentcert/pkg/response"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	kafkaReader := kafkainfra.CreateKafkaReader(conf)
	defer kafkaReader.Close()

	emailSvc := service.CreateNewService(kafkaReader, conf.SMTPConfig)
	go emailSvc.ConsumeEvents()

	log.Info().Str("topic", conf.KafkaConfig.BrokerTopic).Msg("email notification worker started")

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "healthy", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", conf.ServicePort)))
}
