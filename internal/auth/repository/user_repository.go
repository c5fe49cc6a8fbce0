package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/pkg/errs"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(email, hashed_password, role, uid, university_uid, is_verified, is_active, full_name, created_at, updated_at) VALUES (:email, :hashed_password, :role, :uid, :university_uid, :is_verified, :is_active, :full_name, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE users SET full_name=:full_name, role=:role, uid=:uid, university_uid=:university_uid, is_verified=:is_verified, is_active=:is_active, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter dto.UserFilter) (data []domain.User, err error) {
	query := "SELECT * FROM users WHERE 1=1"
	args := make(map[string]interface{})

	if filter.Search != "" {
		query += " AND email ILIKE :search"
		args["search"] = "%" + filter.Search + "%"
	}

	if filter.Role != "" {
		query += " AND role = :role"
		args["role"] = filter.Role
	}

	query += " ORDER BY created_at DESC"

	if filter.Size != 0 {
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Size
		args["offset"] = filter.Page * filter.Size
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context, filter dto.UserFilter) (count int64, err error) {
	query := "SELECT COUNT(id) FROM users WHERE 1=1"
	args := make(map[string]interface{})

	if filter.Search != "" {
		query += " AND email ILIKE :search"
		args["search"] = "%" + filter.Search + "%"
	}

	if filter.Role != "" {
		query += " AND role = :role"
		args["role"] = filter.Role
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, err
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, err
	}

	return
}

func (r *UserRepositoryImpl) GetUsersByRole(ctx context.Context, role string) (data []domain.User, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM users WHERE role = $1 ORDER BY created_at DESC", role)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsersByRole").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) CountUsersByUIDPrefix(ctx context.Context, prefix string) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM users WHERE uid LIKE $1", prefix+"%")
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsersByUIDPrefix").Msg("")
		return 0, err
	}

	return
}

func (r *UserRepositoryImpl) ExistsByUID(ctx context.Context, uid string) (exists bool, err error) {
	err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE uid = $1)", uid)
	if err != nil {
		log.Error().Err(err).Str("component", "ExistsByUID").Msg("")
		return false, err
	}

	return
}
