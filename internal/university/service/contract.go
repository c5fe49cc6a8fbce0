package service

import (
	"context"

	"github.com/studentcert/studentcert/internal/university/dto"
)

type UniversityService interface {
	RegisterUniversity(ctx context.Context, payload dto.UniversityRegisterRequest) (res dto.UniversityResponse, err error)
	ListUniversities(ctx context.Context, verified *bool) (res []dto.UniversityResponse, err error)
	GetUniversity(ctx context.Context, uid string) (res dto.UniversityResponse, err error)
	UpdateUniversity(ctx context.Context, uid string, payload dto.UniversityUpdateRequest) (res dto.UniversityResponse, err error)
	DeleteUniversity(ctx context.Context, uid string) (err error)
	VerifyUniversity(ctx context.Context, uid string) (res dto.VerifyUniversityResponse, err error)
	UnverifyUniversity(ctx context.Context, uid string) (res dto.VerifyUniversityResponse, err error)
	GetPublicKey(ctx context.Context, uid string) (res dto.PublicKeyResponse, err error)
}
