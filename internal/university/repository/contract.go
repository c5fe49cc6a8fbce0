package repository

import (
	"context"

	"github.com/studentcert/studentcert/internal/university/domain"
)

type UniversityRepository interface {
	GetByUID(ctx context.Context, uid string) (res domain.University, err error)
	GetByName(ctx context.Context, name string) (res domain.University, err error)
	GetByEmail(ctx context.Context, email string) (res domain.University, err error)
	AddUniversity(ctx context.Context, data domain.University) (err error)
	UpdateUniversity(ctx context.Context, data domain.University) (err error)
	DeleteUniversity(ctx context.Context, uid string) (err error)
	GetUniversities(ctx context.Context, verified *bool) (data []domain.University, err error)
}
