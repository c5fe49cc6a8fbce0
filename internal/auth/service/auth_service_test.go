package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentcert/studentcert/config"
	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/pkg/errs"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]domain.User)}
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	r.users[data.ID] = data
	return nil
}

func (r *fakeUserRepository) DeleteUser(ctx context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) GetUsers(ctx context.Context, filter dto.UserFilter) ([]domain.User, error) {
	data := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Role != "" && !strings.EqualFold(u.Role, filter.Role) {
			continue
		}
		data = append(data, u)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ID < data[j].ID })
	return data, nil
}

func (r *fakeUserRepository) CountUsers(ctx context.Context, filter dto.UserFilter) (int64, error) {
	data, _ := r.GetUsers(ctx, filter)
	return int64(len(data)), nil
}

func (r *fakeUserRepository) GetUsersByRole(ctx context.Context, role string) ([]domain.User, error) {
	return r.GetUsers(ctx, dto.UserFilter{Role: role})
}

func (r *fakeUserRepository) CountUsersByUIDPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.UID != nil && strings.HasPrefix(*u.UID, prefix) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepository) ExistsByUID(ctx context.Context, uid string) (bool, error) {
	for _, u := range r.users {
		if u.UID != nil && *u.UID == uid {
			return true, nil
		}
	}
	return false, nil
}

type fakeUniversityClient struct {
	registerErr error
	registered  []string
	verified    []string
	unverified  []string
	updated     []string
	deleted     []string
}

func (c *fakeUniversityClient) RegisterUniversity(ctx context.Context, uid, name, email, address, phone string) error {
	if c.registerErr != nil {
		return c.registerErr
	}
	c.registered = append(c.registered, uid)
	return nil
}

func (c *fakeUniversityClient) VerifyUniversity(ctx context.Context, uid string) error {
	c.verified = append(c.verified, uid)
	return nil
}

func (c *fakeUniversityClient) UnverifyUniversity(ctx context.Context, uid string) error {
	c.unverified = append(c.unverified, uid)
	return nil
}

func (c *fakeUniversityClient) UpdateUniversity(ctx context.Context, uid string, name, email *string) error {
	c.updated = append(c.updated, uid)
	return nil
}

func (c *fakeUniversityClient) DeleteUniversity(ctx context.Context, uid string) error {
	c.deleted = append(c.deleted, uid)
	return nil
}

type fakeProducer struct {
	messages [][]byte
}

func (p *fakeProducer) Publish(msg []byte) error {
	p.messages = append(p.messages, msg)
	return nil
}

func newAuthService(repo *fakeUserRepository, client *fakeUniversityClient, producer *fakeProducer) AuthService {
	return CreateNewService(repo, config.Config{JWTSecret: "test-secret"}, CreateUIDGenerator(repo), client, producer)
}

func TestRegister_AdminIsAutoVerified(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "admin@studentcert.io",
		Password: "secret123",
		FullName: "Root Admin",
		Role:     "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", res.Role)
	assert.True(t, strings.HasPrefix(res.Uid, fmt.Sprintf("ADM-%d-", time.Now().Year())))

	user, err := repo.GetUserByEmail(context.Background(), "admin@studentcert.io")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.True(t, user.IsActive)
}

func TestRegister_StudentWithoutUniversityIsRejected(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "secret123",
		FullName: "Jane Student",
		Role:     "STUDENT",
	})
	assert.ErrorIs(t, err, errs.ErrStudentUniversityRequired)

	// Rejected before any write: the email must remain available.
	user, err := repo.GetUserByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	assert.Zero(t, user.ID)
}

func TestRegister_AssignsSequentialUIDs(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})
	year := time.Now().Year()

	first, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:         "first@example.com",
		Password:      "secret123",
		FullName:      "First Student",
		Role:          "STUDENT",
		UniversityUid: "UNI-2025-001",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-001", year), first.Uid)

	second, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:         "second@example.com",
		Password:      "secret123",
		FullName:      "Second Student",
		Role:          "STUDENT",
		UniversityUid: "UNI-2025-001",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-002", year), second.Uid)
}

func TestRegister_RollsBackUserWhenRegistryRejects(t *testing.T) {
	repo := newFakeUserRepository()
	client := &fakeUniversityClient{registerErr: errors.New("name already taken")}
	svc := newAuthService(repo, client, &fakeProducer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:          "uni@example.edu",
		Password:       "secret123",
		FullName:       "Example University",
		Role:           "UNIVERSITY",
		UniversityName: "Example University",
	})
	assert.ErrorIs(t, err, errs.ErrRegistrationFailed)

	user, repoErr := repo.GetUserByEmail(context.Background(), "uni@example.edu")
	require.NoError(t, repoErr)
	assert.Zero(t, user.ID, "identity must not outlive a failed registry write")
}

func TestRegister_UnknownRoleLeavesNoRow(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "orphan@example.com",
		Password: "secret123",
		FullName: "No Such Role",
		Role:     "WIZARD",
	})
	assert.ErrorIs(t, err, errs.ErrUnknownRole)

	user, repoErr := repo.GetUserByEmail(context.Background(), "orphan@example.com")
	require.NoError(t, repoErr)
	assert.Zero(t, user.ID, "a rejected role must not create an identity")
}

func TestRegister_DuplicateEmailIsRejected(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})

	payload := dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "secret123",
		FullName: "First",
		Role:     "EMPLOYER",
	}

	_, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), payload)
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
}

func TestRegister_PublishesWelcomeEmail(t *testing.T) {
	repo := newFakeUserRepository()
	producer := &fakeProducer{}
	svc := newAuthService(repo, &fakeUniversityClient{}, producer)

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "employer@example.com",
		Password: "secret123",
		FullName: "Acme Corp",
		Role:     "EMPLOYER",
	})
	require.NoError(t, err)
	require.Len(t, producer.messages, 1)

	var email dto.EmailRequest
	require.NoError(t, json.Unmarshal(producer.messages[0], &email))

	assert.Equal(t, "employer@example.com", email.To)
	assert.Equal(t, "Your registration to StudentCert is successful", email.Subject)
	assert.Equal(t, "Dear Acme Corp,\n\nThank you for registering at StudentCert. Your unique UID is: "+res.Uid+"\n\nBest regards,\nStudentCert Team", email.Body)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newAuthService(repo, &fakeUniversityClient{}, &fakeProducer{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	uid := "EMP-2025-001"
	seed := func(email string, verified, active bool) {
		_, err := repo.AddUser(context.Background(), domain.User{
			Email:          email,
			HashedPassword: string(hash),
			Role:           domain.RoleEmployer,
			UID:            &uid,
			IsVerified:     verified,
			IsActive:       active,
			FullName:       "Test Employer",
		})
		require.NoError(t, err)
	}
	seed("active@example.com", true, true)
	seed("disabled@example.com", true, false)
	seed("unverified@example.com", false, true)

	testCases := []struct {
		name        string
		payload     dto.LoginRequest
		expectedErr error
	}{
		{
			name:    "valid credentials",
			payload: dto.LoginRequest{Email: "active@example.com", Password: "secret123"},
		},
		{
			name:        "unknown email",
			payload:     dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"},
			expectedErr: errs.ErrInvalidCredentials,
		},
		{
			name:        "wrong password",
			payload:     dto.LoginRequest{Email: "active@example.com", Password: "wrong"},
			expectedErr: errs.ErrInvalidCredentials,
		},
		{
			name:        "disabled account",
			payload:     dto.LoginRequest{Email: "disabled@example.com", Password: "secret123"},
			expectedErr: errs.ErrAccountDisabled,
		},
		{
			name:        "unverified account",
			payload:     dto.LoginRequest{Email: "unverified@example.com", Password: "secret123"},
			expectedErr: errs.ErrAccountUnverified,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Login(context.Background(), tc.payload)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, "employer", res.Role)
			assert.Equal(t, uid, res.Uid)
		})
	}
}
