package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/config"
	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/internal/auth/repository"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type ServiceImpl struct {
	repo             repository.UserRepository
	config           config.Config
	uidGenerator     *UIDGenerator
	universityClient UniversityClient
	producer         EventProducer
}

func CreateNewService(repo repository.UserRepository, config config.Config, uidGenerator *UIDGenerator, universityClient UniversityClient, producer EventProducer) AuthService {
	return &ServiceImpl{
		repo:             repo,
		config:           config,
		uidGenerator:     uidGenerator,
		universityClient: universityClient,
		producer:         producer,
	}
}

func (s *ServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (res dto.AuthData, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return res, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInvalidCredentials
	}

	if !user.IsActive {
		return res, errs.ErrAccountDisabled
	}

	if !user.IsVerified {
		return res, errs.ErrAccountUnverified
	}

	token, err := utils.CreateJWTToken(user.ID, user.Email, user.FullName, user.Role, user.UIDValue(), s.config.JWTSecret)
	if err != nil {
		return
	}

	return toAuthData(user, token), nil
}

func (s *ServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (res dto.AuthData, err error) {
	role := strings.ToUpper(payload.Role)

	// Reject undefined roles before any write: a failed UID assignment after
	// AddUser would strand the identity and burn the email.
	if _, err = rolePrefix(role); err != nil {
		return res, errs.ErrUnknownRole
	}

	if role == domain.RoleStudent && strings.TrimSpace(payload.UniversityUid) == "" {
		return res, errs.ErrStudentUniversityRequired
	}

	if role == domain.RoleUniversity && strings.TrimSpace(payload.UniversityName) == "" {
		payload.UniversityName = payload.FullName
	}

	existing, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}
	if existing.ID != 0 {
		return res, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	user := domain.User{
		Email:          payload.Email,
		HashedPassword: string(hash),
		Role:           role,
		IsVerified:     role == domain.RoleAdmin,
		IsActive:       true,
		FullName:       "User",
	}

	user.ID, err = s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	uid, err := s.uidGenerator.RegenerateIfConflict(ctx, role)
	if err != nil {
		return
	}

	user.FullName = payload.FullName
	user.UID = &uid
	if payload.UniversityUid != "" {
		user.UniversityUID = &payload.UniversityUid
	}

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	if role == domain.RoleUniversity {
		err = s.universityClient.RegisterUniversity(ctx, uid, payload.UniversityName, payload.Email, payload.UniversityAddress, payload.UniversityPhone)
		if err != nil {
			// Compensate: the identity must not outlive a failed registry write.
			if delErr := s.repo.DeleteUser(ctx, user.ID); delErr != nil {
				log.Error().Err(delErr).Str("component", "Register").Msg("failed to roll back user after university registration failure")
			}
			return res, fmt.Errorf("%w: %s", errs.ErrRegistrationFailed, err.Error())
		}
	}

	token, err := utils.CreateJWTToken(user.ID, user.Email, user.FullName, user.Role, uid, s.config.JWTSecret)
	if err != nil {
		return
	}

	s.publishRegistrationEmail(user, uid)

	return toAuthData(user, token), nil
}

// publishRegistrationEmail is fire-and-forget: a failed publish never fails
// the registration.
func (s *ServiceImpl) publishRegistrationEmail(user domain.User, uid string) {
	emailRequest := dto.EmailRequest{
		To:      user.Email,
		Subject: "Your registration to StudentCert is successful",
		Body: "Dear " + user.FullName + ",\n\n" +
			"Thank you for registering at StudentCert. Your unique UID is: " + uid + "\n\n" +
			"Best regards,\nStudentCert Team",
	}

	msg, err := json.Marshal(emailRequest)
	if err != nil {
		log.Error().Err(err).Str("component", "publishRegistrationEmail").Msg("")
		return
	}

	if err := s.producer.Publish(msg); err != nil {
		log.Error().Err(err).Str("component", "publishRegistrationEmail").Msg("failed to publish registration email event")
		return
	}

	log.Info().Str("component", "publishRegistrationEmail").Str("to", user.Email).Msg("published registration email event")
}

func (s *ServiceImpl) GetUserByID(ctx context.Context, id int64) (res dto.UserInfoResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return res, errs.ErrUserNotFound
	}

	return toUserInfo(user), nil
}

func (s *ServiceImpl) GetUserByEmail(ctx context.Context, email string) (res dto.UserInfoResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return res, errs.ErrUserNotFound
	}

	return toUserInfo(user), nil
}

func (s *ServiceImpl) GetUniversities(ctx context.Context) (res []dto.UniversityInfo, err error) {
	universities, err := s.repo.GetUsersByRole(ctx, domain.RoleUniversity)
	if err != nil {
		return nil, err
	}

	res = make([]dto.UniversityInfo, 0, len(universities))
	for _, u := range universities {
		if u.UID == nil {
			continue
		}
		res = append(res, dto.UniversityInfo{
			Uid:   *u.UID,
			Name:  u.FullName,
			Email: u.Email,
		})
	}

	return res, nil
}

func toAuthData(user domain.User, token string) dto.AuthData {
	return dto.AuthData{
		ID:            strconv.FormatInt(user.ID, 10),
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          strings.ToLower(user.Role),
		Token:         token,
		Uid:           user.UIDValue(),
		UniversityUid: user.UniversityUIDValue(),
	}
}

func toUserInfo(user domain.User) dto.UserInfoResponse {
	return dto.UserInfoResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          user.Role,
		Uid:           user.UIDValue(),
		UniversityUid: user.UniversityUIDValue(),
	}
}
