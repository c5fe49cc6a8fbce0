package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentcert/studentcert/internal/certificate/domain"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/pkg/errs"
)

type fakeCertificateRepository struct {
	certificates map[string]domain.Certificate
	order        []string
}

func newFakeCertificateRepository() *fakeCertificateRepository {
	return &fakeCertificateRepository{certificates: make(map[string]domain.Certificate)}
}

func (r *fakeCertificateRepository) GetByCertificateNumber(ctx context.Context, certificateNumber string) (domain.Certificate, error) {
	for _, cert := range r.certificates {
		if cert.CertificateNumber == certificateNumber {
			return cert, nil
		}
	}
	return domain.Certificate{}, nil
}

func (r *fakeCertificateRepository) GetByID(ctx context.Context, id string) (domain.Certificate, error) {
	return r.certificates[id], nil
}

func (r *fakeCertificateRepository) GetCertificates(ctx context.Context) ([]domain.Certificate, error) {
	data := make([]domain.Certificate, 0, len(r.order))
	for _, id := range r.order {
		data = append(data, r.certificates[id])
	}
	return data, nil
}

func (r *fakeCertificateRepository) GetByStudentEmail(ctx context.Context, email string) ([]domain.Certificate, error) {
	data := make([]domain.Certificate, 0)
	for _, id := range r.order {
		if r.certificates[id].StudentEmail == email {
			data = append(data, r.certificates[id])
		}
	}
	return data, nil
}

func (r *fakeCertificateRepository) AddCertificate(ctx context.Context, data domain.Certificate) error {
	r.certificates[data.ID] = data
	r.order = append(r.order, data.ID)
	return nil
}

func (r *fakeCertificateRepository) UpdateCertificate(ctx context.Context, data domain.Certificate) error {
	r.certificates[data.ID] = data
	return nil
}

type fakeAuthClient struct {
	usersByEmail map[string]dto.UserInfo
	usersByID    map[int64]dto.UserInfo
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		usersByEmail: make(map[string]dto.UserInfo),
		usersByID:    make(map[int64]dto.UserInfo),
	}
}

func (c *fakeAuthClient) addUser(user dto.UserInfo) {
	c.usersByEmail[user.Email] = user
	c.usersByID[user.ID] = user
}

func (c *fakeAuthClient) GetUserByEmail(ctx context.Context, email string) (dto.UserInfo, error) {
	user, ok := c.usersByEmail[email]
	if !ok {
		return dto.UserInfo{}, errs.ErrUserNotFound
	}
	return user, nil
}

func (c *fakeAuthClient) GetUserByID(ctx context.Context, id int64) (dto.UserInfo, error) {
	user, ok := c.usersByID[id]
	if !ok {
		return dto.UserInfo{}, errs.ErrUserNotFound
	}
	return user, nil
}

func newCertificateService(t *testing.T) (CertificateService, *fakeCertificateRepository) {
	t.Helper()

	repo := newFakeCertificateRepository()
	authClient := newFakeAuthClient()
	authClient.addUser(dto.UserInfo{ID: 1, Email: "student@example.com", FullName: "Jane Student", Role: "STUDENT", Uid: "STU-2025-001"})
	authClient.addUser(dto.UserInfo{ID: 2, Email: "uni@example.edu", FullName: "Example University", Role: "UNIVERSITY", Uid: "UNI-2025-001"})

	return CreateNewService(repo, authClient), repo
}

func issueTestCertificate(t *testing.T, svc CertificateService) dto.CertificateResponse {
	t.Helper()

	res, err := svc.IssueCertificate(context.Background(), dto.CertificateIssueRequest{
		StudentEmail: "student@example.com",
		StudentName:  "Jane Student",
		CourseName:   "Computer Science",
		Grade:        "A",
		Cgpa:         "3.9",
		IssueDate:    "2025-06-15",
	}, 2)
	require.NoError(t, err)
	return res
}

func TestIssueCertificate(t *testing.T) {
	svc, _ := newCertificateService(t)

	res := issueTestCertificate(t, svc)

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), res.CertificateNumber)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), res.CertificateHash)
	assert.Len(t, res.VerificationCode, 6)
	assert.Equal(t, "mock-digital-signature", res.DigitalSignature)
	assert.Equal(t, domain.StatusActive, res.Status)
	assert.Equal(t, "STU-2025-001", res.StudentID)
	assert.Equal(t, "UNI-2025-001", res.UniversityID)
}

func TestIssueCertificate_UnknownStudent(t *testing.T) {
	svc, _ := newCertificateService(t)

	_, err := svc.IssueCertificate(context.Background(), dto.CertificateIssueRequest{
		StudentEmail: "nobody@example.com",
		StudentName:  "Nobody",
		CourseName:   "Computer Science",
	}, 2)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestBatchIssueCertificates_MixedResults(t *testing.T) {
	svc, _ := newCertificateService(t)

	res, err := svc.BatchIssueCertificates(context.Background(), dto.BatchIssueRequest{
		Certificates: []dto.CertificateIssueRequest{
			{StudentEmail: "student@example.com", StudentName: "Jane Student", CourseName: "Mathematics"},
			{StudentEmail: "ghost@example.com", StudentName: "Ghost", CourseName: "Physics"},
		},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalRequested)
	assert.Equal(t, 1, res.SuccessfullyIssued)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Success)
	require.NotNil(t, res.Results[0].Certificate)
	assert.False(t, res.Results[1].Success)
	assert.NotEmpty(t, res.Results[1].Error)
}

func TestUpdateCertificate_PartialFields(t *testing.T) {
	svc, _ := newCertificateService(t)
	issued := issueTestCertificate(t, svc)

	grade := "B+"
	res, err := svc.UpdateCertificate(context.Background(), dto.CertificateUpdateRequest{
		CertificateNumber: issued.CertificateNumber,
		Grade:             &grade,
	})
	require.NoError(t, err)

	assert.Equal(t, "B+", res.Grade)
	assert.Equal(t, issued.Cgpa, res.Cgpa)
	assert.Equal(t, issued.CertificateHash, res.CertificateHash)
}

func TestUpdateCertificate_NotFound(t *testing.T) {
	svc, _ := newCertificateService(t)

	_, err := svc.UpdateCertificate(context.Background(), dto.CertificateUpdateRequest{CertificateNumber: "DEADBEEF"})
	assert.ErrorIs(t, err, errs.ErrCertificateNotFound)
}

func TestRevokeCertificate_IsIdempotent(t *testing.T) {
	svc, repo := newCertificateService(t)
	issued := issueTestCertificate(t, svc)

	err := svc.RevokeCertificate(context.Background(), dto.CertificateRevocationRequest{
		CertificateNumber: issued.CertificateNumber,
		Reason:            "Academic misconduct",
	})
	require.NoError(t, err)

	// Revoking again overwrites the reason instead of failing.
	err = svc.RevokeCertificate(context.Background(), dto.CertificateRevocationRequest{
		CertificateNumber: issued.CertificateNumber,
		Reason:            "Issued in error",
	})
	require.NoError(t, err)

	stored, err := repo.GetByCertificateNumber(context.Background(), issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRevoked, stored.Status)
	require.NotNil(t, stored.RevocationReason)
	assert.Equal(t, "Issued in error", *stored.RevocationReason)
}

func TestListCertificatesByStudentEmail_StatusFilter(t *testing.T) {
	svc, _ := newCertificateService(t)
	first := issueTestCertificate(t, svc)
	issueTestCertificate(t, svc)

	err := svc.RevokeCertificate(context.Background(), dto.CertificateRevocationRequest{
		CertificateNumber: first.CertificateNumber,
		Reason:            "test",
	})
	require.NoError(t, err)

	active, err := svc.ListCertificatesByStudentEmail(context.Background(), "student@example.com", "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, domain.StatusActive, active[0].Status)

	all, err := svc.ListCertificatesByStudentEmail(context.Background(), "student@example.com", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
