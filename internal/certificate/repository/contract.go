package repository

import (
	"context"

	"github.com/studentcert/studentcert/internal/certificate/domain"
)

type CertificateRepository interface {
	GetByCertificateNumber(ctx context.Context, certificateNumber string) (res domain.Certificate, err error)
	GetByID(ctx context.Context, id string) (res domain.Certificate, err error)
	GetCertificates(ctx context.Context) (data []domain.Certificate, err error)
	GetByStudentEmail(ctx context.Context, email string) (data []domain.Certificate, err error)
	AddCertificate(ctx context.Context, data domain.Certificate) (err error)
	UpdateCertificate(ctx context.Context, data domain.Certificate) (err error)
}
