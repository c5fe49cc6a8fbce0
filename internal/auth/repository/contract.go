package repository

import (
	"context"

	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	DeleteUser(ctx context.Context, id int64) (err error)
	GetUsers(ctx context.Context, filter dto.UserFilter) (data []domain.User, err error)
	CountUsers(ctx context.Context, filter dto.UserFilter) (count int64, err error)
	GetUsersByRole(ctx context.Context, role string) (data []domain.User, err error)
	CountUsersByUIDPrefix(ctx context.Context, prefix string) (count int64, err error)
	ExistsByUID(ctx context.Context, uid string) (exists bool, err error)
}
