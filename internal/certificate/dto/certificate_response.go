package dto

type CertificateResponse struct {
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
	CreatedAt         int64  `json:"createdAt"`
	UpdatedAt         int64  `json:"updatedAt"`
}

type BatchIssueItemResult struct {
	Success     bool                 `json:"success"`
	Certificate *CertificateResponse `json:"certificate,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type BatchIssueResponse struct {
	TotalRequested     int                    `json:"totalRequested"`
	SuccessfullyIssued int                    `json:"successfullyIssued"`
	Failed             int                    `json:"failed"`
	Results            []BatchIssueItemResult `json:"results"`
}

type FileUploadData struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

// UserInfo is the auth-service view of an identity, as returned by its
// /api/users endpoints.
type UserInfo struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Role          string `json:"role"`
	Uid           string `json:"uid"`
	UniversityUid string `json:"universityUid"`
}
