package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentcert/studentcert/internal/university/domain"
	"github.com/studentcert/studentcert/internal/university/dto"
	"github.com/studentcert/studentcert/pkg/errs"
)

type fakeUniversityRepository struct {
	universities map[string]domain.University
}

func newFakeUniversityRepository() *fakeUniversityRepository {
	return &fakeUniversityRepository{universities: make(map[string]domain.University)}
}

func (r *fakeUniversityRepository) GetByUID(ctx context.Context, uid string) (domain.University, error) {
	return r.universities[uid], nil
}

func (r *fakeUniversityRepository) GetByName(ctx context.Context, name string) (domain.University, error) {
	for _, u := range r.universities {
		if u.Name == name {
			return u, nil
		}
	}
	return domain.University{}, nil
}

func (r *fakeUniversityRepository) GetByEmail(ctx context.Context, email string) (domain.University, error) {
	for _, u := range r.universities {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.University{}, nil
}

func (r *fakeUniversityRepository) AddUniversity(ctx context.Context, data domain.University) error {
	r.universities[data.UID] = data
	return nil
}

func (r *fakeUniversityRepository) UpdateUniversity(ctx context.Context, data domain.University) error {
	r.universities[data.UID] = data
	return nil
}

func (r *fakeUniversityRepository) DeleteUniversity(ctx context.Context, uid string) error {
	delete(r.universities, uid)
	return nil
}

func (r *fakeUniversityRepository) GetUniversities(ctx context.Context, verified *bool) ([]domain.University, error) {
	data := make([]domain.University, 0, len(r.universities))
	for _, u := range r.universities {
		if verified != nil && u.Verified != *verified {
			continue
		}
		data = append(data, u)
	}
	return data, nil
}

func registerTestUniversity(t *testing.T, svc UniversityService, uid, name, email string) dto.UniversityResponse {
	t.Helper()

	res, err := svc.RegisterUniversity(context.Background(), dto.UniversityRegisterRequest{
		UniversityId:   uid,
		UniversityName: name,
		Email:          email,
	})
	require.NoError(t, err)
	return res
}

func TestRegisterUniversity(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())

	res := registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "admin@example.edu")

	assert.Equal(t, "UNI-2025-001", res.UniversityId)
	assert.False(t, res.Verified, "universities start unverified")
	require.NotEmpty(t, res.PublicKey)

	decoded, err := base64.StdEncoding.DecodeString(res.PublicKey)
	require.NoError(t, err)
	assert.NotEmpty(t, decoded)
}

func TestRegisterUniversity_DuplicateName(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())
	registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "a@example.edu")

	_, err := svc.RegisterUniversity(context.Background(), dto.UniversityRegisterRequest{
		UniversityId:   "UNI-2025-002",
		UniversityName: "Example University",
		Email:          "b@example.edu",
	})
	assert.ErrorIs(t, err, errs.ErrUniversityNameExists)
}

func TestRegisterUniversity_DuplicateEmail(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())
	registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "shared@example.edu")

	_, err := svc.RegisterUniversity(context.Background(), dto.UniversityRegisterRequest{
		UniversityId:   "UNI-2025-002",
		UniversityName: "Other University",
		Email:          "shared@example.edu",
	})
	assert.ErrorIs(t, err, errs.ErrUniversityEmailExists)
}

func TestVerifyUniversity_Transitions(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())
	registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "a@example.edu")

	res, err := svc.VerifyUniversity(context.Background(), "UNI-2025-001")
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Equal(t, "University verified successfully", res.Message)

	_, err = svc.VerifyUniversity(context.Background(), "UNI-2025-001")
	assert.ErrorIs(t, err, errs.ErrUniversityAlreadyVerified)

	unverifyRes, err := svc.UnverifyUniversity(context.Background(), "UNI-2025-001")
	require.NoError(t, err)
	assert.False(t, unverifyRes.Verified)

	_, err = svc.UnverifyUniversity(context.Background(), "UNI-2025-001")
	assert.ErrorIs(t, err, errs.ErrUniversityAlreadyUnverified)
}

func TestVerifyUniversity_NotFound(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())

	_, err := svc.VerifyUniversity(context.Background(), "UNI-2025-999")
	assert.ErrorIs(t, err, errs.ErrUniversityNotFound)
}

func TestUpdateUniversity_EmailConflictLeavesRecordUnchanged(t *testing.T) {
	repo := newFakeUniversityRepository()
	svc := CreateNewService(repo)
	registerTestUniversity(t, svc, "UNI-2025-001", "First University", "first@example.edu")
	registerTestUniversity(t, svc, "UNI-2025-002", "Second University", "second@example.edu")

	taken := "first@example.edu"
	_, err := svc.UpdateUniversity(context.Background(), "UNI-2025-002", dto.UniversityUpdateRequest{Email: &taken})
	assert.ErrorIs(t, err, errs.ErrUniversityEmailExists)

	stored, err := repo.GetByUID(context.Background(), "UNI-2025-002")
	require.NoError(t, err)
	assert.Equal(t, "second@example.edu", stored.Email)
}

func TestUpdateUniversity_PartialUpdate(t *testing.T) {
	repo := newFakeUniversityRepository()
	svc := CreateNewService(repo)
	registered := registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "a@example.edu")

	address := "1 Campus Way"
	res, err := svc.UpdateUniversity(context.Background(), "UNI-2025-001", dto.UniversityUpdateRequest{Address: &address})
	require.NoError(t, err)

	assert.Equal(t, address, res.Address)
	assert.Equal(t, "Example University", res.UniversityName)
	assert.Equal(t, registered.PublicKey, res.PublicKey, "update must not touch the key pair")
}

func TestListUniversities_VerifiedFilter(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())
	registerTestUniversity(t, svc, "UNI-2025-001", "First University", "a@example.edu")
	registerTestUniversity(t, svc, "UNI-2025-002", "Second University", "b@example.edu")

	_, err := svc.VerifyUniversity(context.Background(), "UNI-2025-001")
	require.NoError(t, err)

	verified := true
	res, err := svc.ListUniversities(context.Background(), &verified)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "UNI-2025-001", res[0].UniversityId)

	all, err := svc.ListUniversities(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetPublicKey(t *testing.T) {
	svc := CreateNewService(newFakeUniversityRepository())
	registered := registerTestUniversity(t, svc, "UNI-2025-001", "Example University", "a@example.edu")

	res, err := svc.GetPublicKey(context.Background(), "UNI-2025-001")
	require.NoError(t, err)
	assert.Equal(t, registered.PublicKey, res.PublicKey)
	assert.Equal(t, "Example University", res.UniversityName)
}
