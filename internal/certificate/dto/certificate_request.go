package dto

type CertificateIssueRequest struct {
	StudentEmail   string `json:"studentEmail" validate:"required,email"`
	StudentName    string `json:"studentName" validate:"required"`
	CourseName     string `json:"courseName" validate:"required"`
	Specialization string `json:"specialization"`
	Grade          string `json:"grade"`
	Cgpa           string `json:"cgpa"`
	IssueDate      string `json:"issueDate"`
	CompletionDate string `json:"completionDate"`
}

type CertificateUpdateRequest struct {
	CertificateNumber string  `json:"certificateNumber" validate:"required"`
	Grade             *string `json:"grade"`
	Cgpa              *string `json:"cgpa"`
	Specialization    *string `json:"specialization"`
}

type CertificateRevocationRequest struct {
	CertificateNumber string `json:"certificateNumber" validate:"required"`
	Reason            string `json:"reason"`
}

type BatchIssueRequest struct {
	Certificates []CertificateIssueRequest `json:"certificates"`
}
