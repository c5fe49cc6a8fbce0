package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/internal/auth/repository"
	"github.com/studentcert/studentcert/pkg/errs"
)

type AdminServiceImpl struct {
	repo             repository.UserRepository
	universityClient UniversityClient
}

func CreateAdminService(repo repository.UserRepository, universityClient UniversityClient) AdminUserService {
	return &AdminServiceImpl{repo: repo, universityClient: universityClient}
}

func (s *AdminServiceImpl) GetUsers(ctx context.Context, filter dto.UserFilter) (res dto.PaginatedUsersResponse, err error) {
	if filter.Size == 0 {
		filter.Size = 20
	}
	filter.Role = strings.ToUpper(filter.Role)

	users, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return
	}

	total, err := s.repo.CountUsers(ctx, filter)
	if err != nil {
		return
	}

	content := make([]dto.UserDto, 0, len(users))
	for _, u := range users {
		content = append(content, toUserDto(u))
	}

	totalPages := int(total) / filter.Size
	if int(total)%filter.Size != 0 {
		totalPages++
	}

	return dto.PaginatedUsersResponse{
		Content:       content,
		Page:          filter.Page,
		Size:          filter.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *AdminServiceImpl) GetUserByID(ctx context.Context, id int64) (res dto.UserDto, err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	return toUserDto(user), nil
}

func (s *AdminServiceImpl) UpdateUser(ctx context.Context, id int64, payload dto.UpdateUserRequest) (res dto.UserDto, err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	wasVerified := user.IsVerified

	if payload.FullName != nil {
		user.FullName = *payload.FullName
	}
	if payload.Role != nil {
		user.Role = strings.ToUpper(*payload.Role)
	}
	if payload.IsVerified != nil {
		user.IsVerified = *payload.IsVerified
	}
	if payload.IsActive != nil {
		user.IsActive = *payload.IsActive
	}
	if payload.UniversityUid != nil {
		user.UniversityUID = payload.UniversityUid
	}

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	if user.Role == domain.RoleUniversity && user.UID != nil {
		s.syncUniversity(ctx, user, wasVerified, payload.FullName)
	}

	return toUserDto(user), nil
}

// syncUniversity pushes identity changes to the university registry.
// Best-effort only: the two stores may disagree after a partial failure and
// no compensation is attempted.
func (s *AdminServiceImpl) syncUniversity(ctx context.Context, user domain.User, wasVerified bool, fullName *string) {
	uid := *user.UID

	if !wasVerified && user.IsVerified {
		if err := s.universityClient.VerifyUniversity(ctx, uid); err != nil {
			log.Error().Err(err).Str("component", "syncUniversity").Str("uid", uid).Msg("failed to sync verification to university service")
		}
	} else if wasVerified && !user.IsVerified {
		if err := s.universityClient.UnverifyUniversity(ctx, uid); err != nil {
			log.Error().Err(err).Str("component", "syncUniversity").Str("uid", uid).Msg("failed to sync unverification to university service")
		}
	}

	if fullName != nil {
		if err := s.universityClient.UpdateUniversity(ctx, uid, fullName, &user.Email); err != nil {
			log.Error().Err(err).Str("component", "syncUniversity").Str("uid", uid).Msg("failed to sync name change to university service")
		}
	}
}

func (s *AdminServiceImpl) DeleteUser(ctx context.Context, id int64) (err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	if user.Role == domain.RoleUniversity && user.UID != nil {
		if err := s.universityClient.DeleteUniversity(ctx, *user.UID); err != nil {
			log.Error().Err(err).Str("component", "DeleteUser").Str("uid", *user.UID).Msg("failed to delete university from university service")
		}
	}

	return s.repo.DeleteUser(ctx, id)
}

func (s *AdminServiceImpl) VerifyUser(ctx context.Context, id int64) (res dto.UserDto, err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	user.IsVerified = true
	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	if user.Role == domain.RoleUniversity && user.UID != nil {
		if err := s.universityClient.VerifyUniversity(ctx, *user.UID); err != nil {
			log.Error().Err(err).Str("component", "VerifyUser").Str("uid", *user.UID).Msg("failed to sync verification to university service")
		}
	}

	return toUserDto(user), nil
}

func (s *AdminServiceImpl) ActivateUser(ctx context.Context, id int64) (res dto.UserDto, err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	user.IsActive = true
	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	return toUserDto(user), nil
}

func (s *AdminServiceImpl) DeactivateUser(ctx context.Context, id int64) (res dto.UserDto, err error) {
	user, err := s.getExistingUser(ctx, id)
	if err != nil {
		return
	}

	user.IsActive = false
	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	return toUserDto(user), nil
}

func (s *AdminServiceImpl) getExistingUser(ctx context.Context, id int64) (user domain.User, err error) {
	user, err = s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return user, errs.ErrUserNotFound
	}

	return user, nil
}

func toUserDto(user domain.User) dto.UserDto {
	return dto.UserDto{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		IsActive:      user.IsActive,
		Uid:           user.UIDValue(),
		UniversityUid: user.UniversityUIDValue(),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
