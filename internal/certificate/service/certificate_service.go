package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/certificate/domain"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/internal/certificate/repository"
	"github.com/studentcert/studentcert/pkg/errs"
)

type ServiceImpl struct {
	repo       repository.CertificateRepository
	authClient AuthClient
}

func CreateNewService(repo repository.CertificateRepository, authClient AuthClient) CertificateService {
	return &ServiceImpl{repo: repo, authClient: authClient}
}

func (s *ServiceImpl) IssueCertificate(ctx context.Context, payload dto.CertificateIssueRequest, universityUserID int64) (res dto.CertificateResponse, err error) {
	studentInfo, err := s.authClient.GetUserByEmail(ctx, payload.StudentEmail)
	if err != nil {
		log.Error().Err(err).Str("component", "IssueCertificate").Str("email", payload.StudentEmail).Msg("student lookup failed")
		return res, errs.ErrUserNotFound
	}

	universityInfo, err := s.authClient.GetUserByID(ctx, universityUserID)
	if err != nil {
		log.Error().Err(err).Str("component", "IssueCertificate").Int64("id", universityUserID).Msg("university lookup failed")
		return res, errs.ErrUserNotFound
	}

	cert := domain.Certificate{
		ID:                uuid.NewString(),
		CertificateNumber: strings.ToUpper(uuid.NewString()[:8]),
		StudentID:         studentInfo.Uid,
		UniversityID:      universityInfo.Uid,
		StudentName:       payload.StudentName,
		StudentEmail:      payload.StudentEmail,
		CourseName:        payload.CourseName,
		Specialization:    payload.Specialization,
		Grade:             payload.Grade,
		Cgpa:              payload.Cgpa,
		IssueDate:         payload.IssueDate,
		CompletionDate:    payload.CompletionDate,
		CertificateHash:   strings.ReplaceAll(uuid.NewString(), "-", ""),
		DigitalSignature:  "mock-digital-signature",
		VerificationCode:  uuid.NewString()[:6],
		Status:            domain.StatusActive,
	}

	if err = s.repo.AddCertificate(ctx, cert); err != nil {
		return
	}

	log.Info().
		Str("component", "IssueCertificate").
		Str("certificate_number", cert.CertificateNumber).
		Str("student_id", cert.StudentID).
		Str("university_id", cert.UniversityID).
		Msg("certificate issued")

	return toResponse(cert), nil
}

// BatchIssueCertificates never aborts: each item succeeds or fails on its own.
func (s *ServiceImpl) BatchIssueCertificates(ctx context.Context, payload dto.BatchIssueRequest, universityUserID int64) (res dto.BatchIssueResponse, err error) {
	res.TotalRequested = len(payload.Certificates)
	res.Results = make([]dto.BatchIssueItemResult, 0, len(payload.Certificates))

	for _, item := range payload.Certificates {
		cert, issueErr := s.IssueCertificate(ctx, item, universityUserID)
		if issueErr != nil {
			res.Failed++
			res.Results = append(res.Results, dto.BatchIssueItemResult{Success: false, Error: issueErr.Error()})
			continue
		}

		res.SuccessfullyIssued++
		res.Results = append(res.Results, dto.BatchIssueItemResult{Success: true, Certificate: &cert})
	}

	return res, nil
}

func (s *ServiceImpl) ListCertificates(ctx context.Context, status string) (res []dto.CertificateResponse, err error) {
	certificates, err := s.repo.GetCertificates(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(filterByStatus(certificates, status)), nil
}

func (s *ServiceImpl) ListCertificatesByStudentEmail(ctx context.Context, email string, status string) (res []dto.CertificateResponse, err error) {
	certificates, err := s.repo.GetByStudentEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return toResponses(filterByStatus(certificates, status)), nil
}

func filterByStatus(certificates []domain.Certificate, status string) []domain.Certificate {
	if status == "" {
		return certificates
	}

	filtered := make([]domain.Certificate, 0, len(certificates))
	for _, cert := range certificates {
		if strings.EqualFold(cert.Status, status) {
			filtered = append(filtered, cert)
		}
	}

	return filtered
}

func (s *ServiceImpl) GetCertificateByCertificateNumber(ctx context.Context, certificateNumber string) (res dto.CertificateResponse, err error) {
	cert, err := s.getExisting(ctx, certificateNumber)
	if err != nil {
		return
	}

	return toResponse(cert), nil
}

func (s *ServiceImpl) UpdateCertificate(ctx context.Context, payload dto.CertificateUpdateRequest) (res dto.CertificateResponse, err error) {
	cert, err := s.getExisting(ctx, payload.CertificateNumber)
	if err != nil {
		return
	}

	if payload.Grade != nil {
		cert.Grade = *payload.Grade
	}
	if payload.Cgpa != nil {
		cert.Cgpa = *payload.Cgpa
	}
	if payload.Specialization != nil {
		cert.Specialization = *payload.Specialization
	}

	if err = s.repo.UpdateCertificate(ctx, cert); err != nil {
		return
	}

	return toResponse(cert), nil
}

// RevokeCertificate is idempotent by overwrite: revoking an already revoked
// certificate just replaces the stored reason.
func (s *ServiceImpl) RevokeCertificate(ctx context.Context, payload dto.CertificateRevocationRequest) (err error) {
	cert, err := s.getExisting(ctx, payload.CertificateNumber)
	if err != nil {
		return
	}

	cert.Status = domain.StatusRevoked
	cert.RevocationReason = &payload.Reason

	return s.repo.UpdateCertificate(ctx, cert)
}

func (s *ServiceImpl) getExisting(ctx context.Context, certificateNumber string) (res domain.Certificate, err error) {
	cert, err := s.repo.GetByCertificateNumber(ctx, certificateNumber)
	if err != nil {
		return
	}

	if cert.ID == "" {
		return cert, errs.ErrCertificateNotFound
	}

	return cert, nil
}

func toResponse(cert domain.Certificate) dto.CertificateResponse {
	res := dto.CertificateResponse{
		ID:                cert.ID,
		CertificateNumber: cert.CertificateNumber,
		StudentID:         cert.StudentID,
		UniversityID:      cert.UniversityID,
		StudentName:       cert.StudentName,
		StudentEmail:      cert.StudentEmail,
		CourseName:        cert.CourseName,
		Specialization:    cert.Specialization,
		Grade:             cert.Grade,
		Cgpa:              cert.Cgpa,
		IssueDate:         cert.IssueDate,
		CompletionDate:    cert.CompletionDate,
		CertificateHash:   cert.CertificateHash,
		DigitalSignature:  cert.DigitalSignature,
		VerificationCode:  cert.VerificationCode,
		Status:            cert.Status,
		CreatedAt:         cert.CreatedAt,
		UpdatedAt:         cert.UpdatedAt,
	}

	if cert.RevocationReason != nil {
		res.RevocationReason = *cert.RevocationReason
	}

	return res
}

func toResponses(certificates []domain.Certificate) []dto.CertificateResponse {
	res := make([]dto.CertificateResponse, 0, len(certificates))
	for _, cert := range certificates {
		res = append(res, toResponse(cert))
	}
	return res
}
