package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/university/domain"
	"github.com/studentcert/studentcert/pkg/errs"
)

type UniversityRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRepository(db *sqlx.DB) UniversityRepository {
	return &UniversityRepositoryImpl{db: db}
}

func (r *UniversityRepositoryImpl) GetByUID(ctx context.Context, uid string) (res domain.University, err error) {
	return r.getOne(ctx, "SELECT * FROM universities WHERE uid = $1", uid, "GetByUID")
}

func (r *UniversityRepositoryImpl) GetByName(ctx context.Context, name string) (res domain.University, err error) {
	return r.getOne(ctx, "SELECT * FROM universities WHERE name = $1", name, "GetByName")
}

func (r *UniversityRepositoryImpl) GetByEmail(ctx context.Context, email string) (res domain.University, err error) {
	return r.getOne(ctx, "SELECT * FROM universities WHERE email = $1", email, "GetByEmail")
}

func (r *UniversityRepositoryImpl) getOne(ctx context.Context, query string, arg string, component string) (res domain.University, err error) {
	row := r.db.QueryRowxContext(ctx, query, arg)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", component).Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UniversityRepositoryImpl) AddUniversity(ctx context.Context, data domain.University) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, "INSERT INTO universities(uid, name, email, address, phone, public_key, verified, created_at, updated_at) VALUES (:uid, :name, :email, :address, :phone, :public_key, :verified, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUniversity").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UniversityRepositoryImpl) UpdateUniversity(ctx context.Context, data domain.University) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE universities SET name=:name, email=:email, address=:address, phone=:phone, verified=:verified, updated_at=:updated_at WHERE uid=:uid", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUniversity").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UniversityRepositoryImpl) DeleteUniversity(ctx context.Context, uid string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM universities WHERE uid = $1", uid)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteUniversity").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UniversityRepositoryImpl) GetUniversities(ctx context.Context, verified *bool) (data []domain.University, err error) {
	query := "SELECT * FROM universities"
	args := []interface{}{}

	if verified != nil {
		query += " WHERE verified = $1"
		args = append(args, *verified)
	}

	query += " ORDER BY created_at DESC"

	err = r.db.SelectContext(ctx, &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUniversities").Msg("")
		return nil, err
	}

	return data, nil
}
