package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentcert/studentcert/internal/auth/domain"
)

func TestGenerate_RolePrefixes(t *testing.T) {
	gen := CreateUIDGenerator(newFakeUserRepository())
	year := time.Now().Year()

	testCases := []struct {
		role     string
		expected string
	}{
		{domain.RoleStudent, fmt.Sprintf("STU-%d-001", year)},
		{domain.RoleUniversity, fmt.Sprintf("UNI-%d-001", year)},
		{domain.RoleEmployer, fmt.Sprintf("EMP-%d-001", year)},
		{domain.RoleAdmin, fmt.Sprintf("ADM-%d-001", year)},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			uid, err := gen.Generate(context.Background(), tc.role)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, uid)
		})
	}
}

func TestGenerate_UnknownRole(t *testing.T) {
	gen := CreateUIDGenerator(newFakeUserRepository())

	_, err := gen.Generate(context.Background(), "WIZARD")
	assert.Error(t, err)
}

func TestRegenerateIfConflict_SkipsTakenUIDs(t *testing.T) {
	repo := newFakeUserRepository()
	gen := CreateUIDGenerator(repo)
	year := time.Now().Year()

	// Occupy the first candidate without raising the prefix count, forcing a
	// conflict on attempt one.
	taken := fmt.Sprintf("STU-%d-001", year)
	_, err := repo.AddUser(context.Background(), domain.User{
		Email: "ghost@example.com",
		Role:  domain.RoleAdmin,
		UID:   &taken,
	})
	require.NoError(t, err)

	uid, err := gen.RegenerateIfConflict(context.Background(), domain.RoleStudent)
	require.NoError(t, err)
	assert.NotEqual(t, taken, uid)
	assert.Contains(t, uid, fmt.Sprintf("STU-%d-", year))
}

type alwaysConflictingRepo struct {
	*fakeUserRepository
}

func (r *alwaysConflictingRepo) ExistsByUID(ctx context.Context, uid string) (bool, error) {
	return true, nil
}

func TestRegenerateIfConflict_FallsBackToTimestampSuffix(t *testing.T) {
	gen := CreateUIDGenerator(&alwaysConflictingRepo{newFakeUserRepository()})
	year := time.Now().Year()

	uid, err := gen.RegenerateIfConflict(context.Background(), domain.RoleStudent)
	require.NoError(t, err)

	prefix := fmt.Sprintf("STU-%d-001-", year)
	assert.Contains(t, uid, prefix)
	assert.Greater(t, len(uid), len(prefix), "fallback must append a timestamp")
}
