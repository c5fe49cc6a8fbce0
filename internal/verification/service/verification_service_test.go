package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentcert/studentcert/internal/verification/dto"
	"github.com/studentcert/studentcert/pkg/errs"
)

type fakeCertificateClient struct {
	certificates map[string]dto.Certificate
	failing      bool
}

func newFakeCertificateClient() *fakeCertificateClient {
	return &fakeCertificateClient{certificates: make(map[string]dto.Certificate)}
}

func (c *fakeCertificateClient) GetCertificateByNumber(ctx context.Context, certificateNumber string) (*dto.Certificate, error) {
	if c.failing {
		return nil, errs.ErrUpstreamService
	}

	cert, ok := c.certificates[certificateNumber]
	if !ok {
		return nil, nil
	}
	return &cert, nil
}

func seedCertificate(client *fakeCertificateClient, number, status, revocationReason string) {
	client.certificates[number] = dto.Certificate{
		ID:                "id-" + number,
		CertificateNumber: number,
		StudentID:         "STU-2025-001",
		UniversityID:      "UNI-2025-001",
		StudentName:       "Jane Student",
		CourseName:        "Computer Science",
		Status:            status,
		RevocationReason:  revocationReason,
	}
}

func TestVerifyCertificate(t *testing.T) {
	client := newFakeCertificateClient()
	seedCertificate(client, "AB12CD34", "ACTIVE", "")
	seedCertificate(client, "EF56AB78", "REVOKED", "Academic misconduct")
	seedCertificate(client, "CD90EF12", "SUSPENDED", "")
	seedCertificate(client, "AB34CD56", "PENDING", "")

	svc := CreateNewService(client)

	testCases := []struct {
		name           string
		number         string
		expectValid    bool
		expectReason   string
		expectCertSeen bool
	}{
		{
			name:           "active certificate is valid",
			number:         "AB12CD34",
			expectValid:    true,
			expectReason:   "Certificate is valid and active",
			expectCertSeen: true,
		},
		{
			name:           "revoked certificate carries the revocation reason",
			number:         "EF56AB78",
			expectReason:   "Certificate has been revoked. Reason: Academic misconduct",
			expectCertSeen: true,
		},
		{
			name:           "suspended certificate is invalid",
			number:         "CD90EF12",
			expectReason:   "Certificate is currently suspended",
			expectCertSeen: true,
		},
		{
			name:           "unrecognized status fails closed",
			number:         "AB34CD56",
			expectReason:   "Certificate is currently suspended",
			expectCertSeen: true,
		},
		{
			name:         "unknown certificate number",
			number:       "00000000",
			expectReason: "Certificate not found with provided certificate number",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.VerifyCertificate(context.Background(), tc.number)
			require.NoError(t, err)

			assert.Equal(t, tc.expectValid, res.Valid)
			assert.Equal(t, tc.expectReason, res.Reason)
			assert.Equal(t, "certificateNumber", res.VerificationMethod)
			assert.NotZero(t, res.Timestamp)

			if tc.expectCertSeen {
				require.NotNil(t, res.Certificate)
				assert.Equal(t, tc.number, res.Certificate.CertificateNumber)
			} else {
				assert.Nil(t, res.Certificate)
			}
		})
	}
}

func TestVerifyCertificate_StatusIsCaseInsensitive(t *testing.T) {
	client := newFakeCertificateClient()
	seedCertificate(client, "AB12CD34", "revoked", "test")

	svc := CreateNewService(client)

	res, err := svc.VerifyCertificate(context.Background(), "AB12CD34")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "Certificate has been revoked. Reason: test", res.Reason)
}

func TestBulkVerifyCertificates(t *testing.T) {
	client := newFakeCertificateClient()
	seedCertificate(client, "AB12CD34", "ACTIVE", "")

	svc := CreateNewService(client)

	res, err := svc.BulkVerifyCertificates(context.Background(), []string{"AB12CD34", "00000000"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalRequested)
	assert.Equal(t, 1, res.ValidCertificates)
	assert.Equal(t, 1, res.InvalidCertificates)

	// Results stay aligned with the request order.
	require.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Valid)
	assert.Equal(t, "AB12CD34", res.Results[0].Certificate.CertificateNumber)
	assert.False(t, res.Results[1].Valid)
	assert.Equal(t, "Certificate not found with provided certificate number", res.Results[1].Reason)
}

func TestVerifyCertificate_UpstreamFailureIsInvalidResult(t *testing.T) {
	client := newFakeCertificateClient()
	client.failing = true

	svc := CreateNewService(client)

	res, err := svc.VerifyCertificate(context.Background(), "AB12CD34")
	require.NoError(t, err, "an upstream failure must not surface as an error")

	assert.False(t, res.Valid)
	assert.Nil(t, res.Certificate)
	assert.Equal(t, "Verification failed due to internal error", res.Reason)
}

func TestBulkVerifyCertificates_UpstreamFailureCountsInvalid(t *testing.T) {
	client := newFakeCertificateClient()
	client.failing = true

	svc := CreateNewService(client)

	res, err := svc.BulkVerifyCertificates(context.Background(), []string{"AB12CD34"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ValidCertificates)
	assert.Equal(t, 1, res.InvalidCertificates)
	require.Len(t, res.Results, 1)
	assert.False(t, res.Results[0].Valid)
	assert.Equal(t, "Verification failed due to internal error", res.Results[0].Reason)
}
