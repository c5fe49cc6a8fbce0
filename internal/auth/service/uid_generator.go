package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/repository"
)

// UIDGenerator assigns role-prefixed, year-scoped sequential identifiers,
// e.g. STU-2025-001. The mutex only serializes callers within this process;
// concurrent registrations across replicas can still collide, which is why
// RegenerateIfConflict re-checks uniqueness after generating.
type UIDGenerator struct {
	repo repository.UserRepository
	mu   sync.Mutex
}

func CreateUIDGenerator(repo repository.UserRepository) *UIDGenerator {
	return &UIDGenerator{repo: repo}
}

func (g *UIDGenerator) Generate(ctx context.Context, role string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generate(ctx, role)
}

func (g *UIDGenerator) generate(ctx context.Context, role string) (string, error) {
	prefix, err := rolePrefix(role)
	if err != nil {
		return "", err
	}

	year := time.Now().Year()

	count, err := g.repo.CountUsersByUIDPrefix(ctx, fmt.Sprintf("%s-%d-", prefix, year))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%03d", prefix, year, count+1), nil
}

// RegenerateIfConflict retries generation until the candidate is unique, up
// to 10 attempts. The timestamp-suffixed fallback is not re-checked for
// uniqueness; that matches the legacy behavior and is documented as a gap.
func (g *UIDGenerator) RegenerateIfConflict(ctx context.Context, role string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	const maxAttempts = 10

	var uid string
	for attempts := 0; attempts < maxAttempts; attempts++ {
		candidate, err := g.generate(ctx, role)
		if err != nil {
			return "", err
		}
		uid = candidate

		exists, err := g.repo.ExistsByUID(ctx, uid)
		if err != nil {
			return "", err
		}
		if !exists {
			return uid, nil
		}
	}

	return fmt.Sprintf("%s-%d", uid, time.Now().UnixMilli()), nil
}

func rolePrefix(role string) (string, error) {
	switch role {
	case domain.RoleUniversity:
		return "UNI", nil
	case domain.RoleStudent:
		return "STU", nil
	case domain.RoleEmployer:
		return "EMP", nil
	case domain.RoleAdmin:
		return "ADM", nil
	}

	return "", fmt.Errorf("no UID prefix for role %q", role)
}
