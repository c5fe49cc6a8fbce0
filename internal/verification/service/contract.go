package service

import (
	"context"

	"github.com/studentcert/studentcert/internal/verification/dto"
)

type VerificationService interface {
	VerifyCertificate(ctx context.Context, certificateNumber string) (res dto.VerificationResult, err error)
	BulkVerifyCertificates(ctx context.Context, certificateNumbers []string) (res dto.BulkVerificationResponse, err error)
}

// CertificateClient fetches certificates from the certificate service. A nil
// certificate with a nil error means the certificate does not exist.
type CertificateClient interface {
	GetCertificateByNumber(ctx context.Context, certificateNumber string) (res *dto.Certificate, err error)
}
