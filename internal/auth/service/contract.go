package service

import (
	"context"

	"github.com/studentcert/studentcert/internal/auth/dto"
)

type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (res dto.AuthData, err error)
	Register(ctx context.Context, payload dto.RegisterRequest) (res dto.AuthData, err error)
	GetUserByID(ctx context.Context, id int64) (res dto.UserInfoResponse, err error)
	GetUserByEmail(ctx context.Context, email string) (res dto.UserInfoResponse, err error)
	GetUniversities(ctx context.Context) (res []dto.UniversityInfo, err error)
}

type AdminUserService interface {
	GetUsers(ctx context.Context, filter dto.UserFilter) (res dto.PaginatedUsersResponse, err error)
	GetUserByID(ctx context.Context, id int64) (res dto.UserDto, err error)
	UpdateUser(ctx context.Context, id int64, payload dto.UpdateUserRequest) (res dto.UserDto, err error)
	DeleteUser(ctx context.Context, id int64) (err error)
	VerifyUser(ctx context.Context, id int64) (res dto.UserDto, err error)
	ActivateUser(ctx context.Context, id int64) (res dto.UserDto, err error)
	DeactivateUser(ctx context.Context, id int64) (res dto.UserDto, err error)
}

// UniversityClient is the auth-side view of the university registry. UIDs
// crossing this boundary are plain strings with no integrity guarantee.
type UniversityClient interface {
	RegisterUniversity(ctx context.Context, uid, name, email, address, phone string) error
	VerifyUniversity(ctx context.Context, uid string) error
	UnverifyUniversity(ctx context.Context, uid string) error
	UpdateUniversity(ctx context.Context, uid string, name, email *string) error
	DeleteUniversity(ctx context.Context, uid string) error
}

// EventProducer publishes fire-and-forget notification events.
type EventProducer interface {
	Publish(msg []byte) error
}
