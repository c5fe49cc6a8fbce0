package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/verification/dto"
)

const verificationMethod = "certificateNumber"

type ServiceImpl struct {
	client CertificateClient
}

func CreateNewService(client CertificateClient) VerificationService {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) VerifyCertificate(ctx context.Context, certificateNumber string) (res dto.VerificationResult, err error) {
	res = dto.VerificationResult{
		VerificationMethod: verificationMethod,
		Timestamp:          time.Now().UnixMilli(),
	}

	cert, err := s.client.GetCertificateByNumber(ctx, certificateNumber)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyCertificate").Str("certificate_number", certificateNumber).Msg("certificate lookup failed")
		res.Reason = "Verification failed due to internal error"
		return res, nil
	}

	if cert == nil {
		res.Reason = "Certificate not found with provided certificate number"
		return res, nil
	}

	res.Certificate = cert

	// Fail closed: only an explicitly active certificate verifies. Any status
	// this service does not recognize is treated as suspended.
	switch strings.ToUpper(cert.Status) {
	case "ACTIVE":
		res.Valid = true
		res.Reason = "Certificate is valid and active"
	case "REVOKED":
		res.Reason = fmt.Sprintf("Certificate has been revoked. Reason: %s", cert.RevocationReason)
	default:
		res.Reason = "Certificate is currently suspended"
	}

	log.Info().
		Str("component", "VerifyCertificate").
		Str("certificate_number", certificateNumber).
		Bool("valid", res.Valid).
		Msg("certificate verified")

	return res, nil
}

// BulkVerifyCertificates keeps result order aligned with the request order.
// Upstream failures count the entry as invalid instead of failing the batch.
func (s *ServiceImpl) BulkVerifyCertificates(ctx context.Context, certificateNumbers []string) (res dto.BulkVerificationResponse, err error) {
	res.TotalRequested = len(certificateNumbers)
	res.Results = make([]dto.VerificationResult, 0, len(certificateNumbers))

	for _, number := range certificateNumbers {
		result, _ := s.VerifyCertificate(ctx, number)

		if result.Valid {
			res.ValidCertificates++
		} else {
			res.InvalidCertificates++
		}

		res.Results = append(res.Results, result)
	}

	return res, nil
}
