package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/studentcert/studentcert/config"
	"github.com/studentcert/studentcert/internal/notification/dto"
	"github.com/studentcert/studentcert/pkg/utils"
	"gopkg.in/gomail.v2"
)

type EmailServiceImpl struct {
	kafkaReader *kafka.Reader
	smtpConfig  config.SMTPConfig
}

func CreateNewService(kafkaReader *kafka.Reader, smtpConfig config.SMTPConfig) EmailService {
	return &EmailServiceImpl{kafkaReader: kafkaReader, smtpConfig: smtpConfig}
}

// ConsumeEvents blocks forever. Malformed messages and delivery failures are
// logged and skipped so one bad event never stalls the topic.
func (s *EmailServiceImpl) ConsumeEvents() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		var email dto.EmailMessage
		if err := json.Unmarshal(msg.Value, &email); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("failed to unmarshal email event")
			continue
		}

		if err := s.SendEmail(email); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Str("to", email.To).Msg("failed to send email")
			continue
		}

		log.Info().Str("component", "ConsumeEvents").Str("to", email.To).Str("subject", email.Subject).Msg("email sent")
	}
}

func (s *EmailServiceImpl) SendEmail(msg dto.EmailMessage) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.smtpConfig.Sender)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)

	return utils.SendEmail(message, s.smtpConfig.Sender, s.smtpConfig.Password, s.smtpConfig.SMTPServer, s.smtpConfig.SMTPPort)
}
