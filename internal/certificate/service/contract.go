package service

import (
	"context"
	"mime/multipart"

	"github.com/studentcert/studentcert/internal/certificate/dto"
)

type CertificateService interface {
	IssueCertificate(ctx context.Context, payload dto.CertificateIssueRequest, universityUserID int64) (res dto.CertificateResponse, err error)
	BatchIssueCertificates(ctx context.Context, payload dto.BatchIssueRequest, universityUserID int64) (res dto.BatchIssueResponse, err error)
	ListCertificates(ctx context.Context, status string) (res []dto.CertificateResponse, err error)
	ListCertificatesByStudentEmail(ctx context.Context, email string, status string) (res []dto.CertificateResponse, err error)
	GetCertificateByCertificateNumber(ctx context.Context, certificateNumber string) (res dto.CertificateResponse, err error)
	UpdateCertificate(ctx context.Context, payload dto.CertificateUpdateRequest) (res dto.CertificateResponse, err error)
	RevokeCertificate(ctx context.Context, payload dto.CertificateRevocationRequest) (err error)
}

// AuthClient resolves identities at issuance time; the returned UIDs are
// copied onto the certificate and never refreshed.
type AuthClient interface {
	GetUserByEmail(ctx context.Context, email string) (res dto.UserInfo, err error)
	GetUserByID(ctx context.Context, id int64) (res dto.UserInfo, err error)
}

type FileService interface {
	UploadFile(file *multipart.FileHeader, fileType string) (res dto.FileUploadData, err error)
}

type PdfService interface {
	GenerateCertificatePdf(ctx context.Context, certificateID string) (path string, err error)
	GetPdf(certificateID string) (data []byte, filename string, err error)
	CleanUpTempFiles()
}
