package dto

// Certificate is the certificate-service view of an issued certificate.
type Certificate struct {
	ID                string `json:"id"`
	CertificateNumber string `json:"certificateNumber"`
	StudentID         string `json:"studentId"`
	UniversityID      string `json:"universityId"`
	StudentName       string `json:"studentName"`
	StudentEmail      string `json:"studentEmail"`
	CourseName        string `json:"courseName"`
	Specialization    string `json:"specialization"`
	Grade             string `json:"grade"`
	Cgpa              string `json:"cgpa"`
	IssueDate         string `json:"issueDate"`
	CompletionDate    string `json:"completionDate"`
	CertificateHash   string `json:"certificateHash"`
	DigitalSignature  string `json:"digitalSignature"`
	VerificationCode  string `json:"verificationCode"`
	Status            string `json:"status"`
	RevocationReason  string `json:"revocationReason,omitempty"`
}

type VerificationRequest struct {
	CertificateNumber string `json:"certificateNumber" validate:"required"`
}

type BulkVerificationRequest struct {
	CertificateNumbers []string `json:"certificateNumbers" validate:"required,min=1"`
}

// UniversitySnapshot is reserved for an issuer snapshot alongside the
// certificate; no verification path populates it yet.
type UniversitySnapshot struct {
	UniversityId   string `json:"universityId"`
	UniversityName string `json:"universityName"`
}

type VerificationResult struct {
	Valid              bool                `json:"valid"`
	Certificate        *Certificate        `json:"certificate,omitempty"`
	University         *UniversitySnapshot `json:"university,omitempty"`
	VerificationMethod string              `json:"verificationMethod"`
	Timestamp          int64               `json:"timestamp"`
	Reason             string              `json:"reason"`
}

type BulkVerificationResponse struct {
	TotalRequested      int                  `json:"totalRequested"`
	ValidCertificates   int                  `json:"validCertificates"`
	InvalidCertificates int                  `json:"invalidCertificates"`
	Results             []VerificationResult `json:"results"`
}
