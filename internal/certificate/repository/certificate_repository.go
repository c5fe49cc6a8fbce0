package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/certificate/domain"
	"github.com/studentcert/studentcert/pkg/errs"
)

type CertificateRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRepository(db *sqlx.DB) CertificateRepository {
	return &CertificateRepositoryImpl{db: db}
}

func (r *CertificateRepositoryImpl) GetByCertificateNumber(ctx context.Context, certificateNumber string) (res domain.Certificate, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM certificates WHERE certificate_number = $1", certificateNumber)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetByCertificateNumber").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *CertificateRepositoryImpl) GetByID(ctx context.Context, id string) (res domain.Certificate, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM certificates WHERE id = $1", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *CertificateRepositoryImpl) GetCertificates(ctx context.Context) (data []domain.Certificate, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM certificates ORDER BY created_at DESC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCertificates").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *CertificateRepositoryImpl) GetByStudentEmail(ctx context.Context, email string) (data []domain.Certificate, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM certificates WHERE student_email = $1 ORDER BY created_at DESC", email)
	if err != nil {
		log.Error().Err(err).Str("component", "GetByStudentEmail").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *CertificateRepositoryImpl) AddCertificate(ctx context.Context, data domain.Certificate) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, "INSERT INTO certificates(id, certificate_number, student_id, university_id, student_name, student_email, course_name, specialization, grade, cgpa, issue_date, completion_date, certificate_hash, digital_signature, verification_code, status, revocation_reason, created_at, updated_at) VALUES (:id, :certificate_number, :student_id, :university_id, :student_name, :student_email, :course_name, :specialization, :grade, :cgpa, :issue_date, :completion_date, :certificate_hash, :digital_signature, :verification_code, :status, :revocation_reason, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCertificate").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *CertificateRepositoryImpl) UpdateCertificate(ctx context.Context, data domain.Certificate) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE certificates SET grade=:grade, cgpa=:cgpa, specialization=:specialization, status=:status, revocation_reason=:revocation_reason, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCertificate").Msg("")
		return errs.ErrInternalServer
	}

	return
}
