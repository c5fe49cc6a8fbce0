package service

import "github.com/studentcert/studentcert/internal/notification/dto"

type EmailService interface {
	ConsumeEvents()
	SendEmail(msg dto.EmailMessage) error
}
