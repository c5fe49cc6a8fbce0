package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"

	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/university/domain"
	"github.com/studentcert/studentcert/internal/university/dto"
	"github.com/studentcert/studentcert/internal/university/repository"
	"github.com/studentcert/studentcert/pkg/errs"
)

type ServiceImpl struct {
	repo repository.UniversityRepository
}

func CreateNewService(repo repository.UniversityRepository) UniversityService {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) RegisterUniversity(ctx context.Context, payload dto.UniversityRegisterRequest) (res dto.UniversityResponse, err error) {
	byName, err := s.repo.GetByName(ctx, payload.UniversityName)
	if err != nil {
		return
	}
	if byName.UID != "" {
		return res, errs.ErrUniversityNameExists
	}

	byEmail, err := s.repo.GetByEmail(ctx, payload.Email)
	if err != nil {
		return
	}
	if byEmail.UID != "" {
		return res, errs.ErrUniversityEmailExists
	}

	publicKey, err := generatePublicKey()
	if err != nil {
		log.Error().Err(err).Str("component", "RegisterUniversity").Msg("failed to generate key pair")
		return res, errs.ErrInternalServer
	}

	university := domain.University{
		UID:       payload.UniversityId,
		Name:      payload.UniversityName,
		Email:     payload.Email,
		Address:   payload.Address,
		Phone:     payload.Phone,
		PublicKey: publicKey,
		Verified:  false,
	}

	if err = s.repo.AddUniversity(ctx, university); err != nil {
		return
	}

	saved, err := s.repo.GetByUID(ctx, university.UID)
	if err != nil {
		return
	}

	return toResponse(saved), nil
}

func (s *ServiceImpl) ListUniversities(ctx context.Context, verified *bool) (res []dto.UniversityResponse, err error) {
	universities, err := s.repo.GetUniversities(ctx, verified)
	if err != nil {
		return nil, err
	}

	res = make([]dto.UniversityResponse, 0, len(universities))
	for _, u := range universities {
		res = append(res, toResponse(u))
	}

	return res, nil
}

func (s *ServiceImpl) GetUniversity(ctx context.Context, uid string) (res dto.UniversityResponse, err error) {
	university, err := s.getExisting(ctx, uid)
	if err != nil {
		return
	}

	return toResponse(university), nil
}

// UpdateUniversity applies only the provided fields and never touches the
// verified flag, public key, or creation timestamp.
func (s *ServiceImpl) UpdateUniversity(ctx context.Context, uid string, payload dto.UniversityUpdateRequest) (res dto.UniversityResponse, err error) {
	university, err := s.getExisting(ctx, uid)
	if err != nil {
		return
	}

	if payload.UniversityName != nil && university.Name != *payload.UniversityName {
		other, err := s.repo.GetByName(ctx, *payload.UniversityName)
		if err != nil {
			return res, err
		}
		if other.UID != "" && other.UID != uid {
			return res, errs.ErrUniversityNameExists
		}
	}

	if payload.Email != nil && university.Email != *payload.Email {
		other, err := s.repo.GetByEmail(ctx, *payload.Email)
		if err != nil {
			return res, err
		}
		if other.UID != "" && other.UID != uid {
			return res, errs.ErrUniversityEmailExists
		}
	}

	if payload.UniversityName != nil {
		university.Name = *payload.UniversityName
	}
	if payload.Email != nil {
		university.Email = *payload.Email
	}
	if payload.Address != nil {
		university.Address = *payload.Address
	}
	if payload.Phone != nil {
		university.Phone = *payload.Phone
	}

	if err = s.repo.UpdateUniversity(ctx, university); err != nil {
		return
	}

	return toResponse(university), nil
}

func (s *ServiceImpl) DeleteUniversity(ctx context.Context, uid string) (err error) {
	if _, err = s.getExisting(ctx, uid); err != nil {
		return
	}

	return s.repo.DeleteUniversity(ctx, uid)
}

func (s *ServiceImpl) VerifyUniversity(ctx context.Context, uid string) (res dto.VerifyUniversityResponse, err error) {
	university, err := s.getExisting(ctx, uid)
	if err != nil {
		return
	}

	if university.Verified {
		return res, errs.ErrUniversityAlreadyVerified
	}

	university.Verified = true
	if err = s.repo.UpdateUniversity(ctx, university); err != nil {
		return
	}

	return dto.VerifyUniversityResponse{
		UniversityId: uid,
		Verified:     true,
		Message:      "University verified successfully",
	}, nil
}

func (s *ServiceImpl) UnverifyUniversity(ctx context.Context, uid string) (res dto.VerifyUniversityResponse, err error) {
	university, err := s.getExisting(ctx, uid)
	if err != nil {
		return
	}

	if !university.Verified {
		return res, errs.ErrUniversityAlreadyUnverified
	}

	university.Verified = false
	if err = s.repo.UpdateUniversity(ctx, university); err != nil {
		return
	}

	return dto.VerifyUniversityResponse{
		UniversityId: uid,
		Verified:     false,
		Message:      "University unverified successfully",
	}, nil
}

func (s *ServiceImpl) GetPublicKey(ctx context.Context, uid string) (res dto.PublicKeyResponse, err error) {
	university, err := s.getExisting(ctx, uid)
	if err != nil {
		return
	}

	return dto.PublicKeyResponse{
		UniversityId:   university.UID,
		UniversityName: university.Name,
		PublicKey:      university.PublicKey,
	}, nil
}

func (s *ServiceImpl) getExisting(ctx context.Context, uid string) (res domain.University, err error) {
	university, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return
	}

	if university.UID == "" {
		return university, errs.ErrUniversityNotFound
	}

	return university, nil
}

// generatePublicKey creates an RSA-2048 key pair and returns the public half
// base64-encoded. The private key is intentionally discarded: certificate
// signing is not implemented yet and nothing must be able to sign.
func generatePublicKey() (string, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}

	encoded, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(encoded), nil
}

func toResponse(u domain.University) dto.UniversityResponse {
	return dto.UniversityResponse{
		UniversityId:   u.UID,
		UniversityName: u.Name,
		Email:          u.Email,
		Address:        u.Address,
		Phone:          u.Phone,
		Verified:       u.Verified,
		PublicKey:      u.PublicKey,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
