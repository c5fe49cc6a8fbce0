package domain

const (
	StatusActive  = "ACTIVE"
	StatusRevoked = "REVOKED"
)

// Certificate freezes the student and university identities at issuance
// time: student_id and university_id are copied UID strings, never re-read
// from the auth service afterwards.
type Certificate struct {
	ID                string  `db:"id"`
	CertificateNumber string  `db:"certificate_number"`
	StudentID         string  `db:"student_id"`
	UniversityID      string  `db:"university_id"`
	StudentName       string  `db:"student_name"`
	StudentEmail      string  `db:"student_email"`
	CourseName        string  `db:"course_name"`
	Specialization    string  `db:"specialization"`
	Grade             string  `db:"grade"`
	Cgpa              string  `db:"cgpa"`
	IssueDate         string  `db:"issue_date"`
	CompletionDate    string  `db:"completion_date"`
	CertificateHash   string  `db:"certificate_hash"`
	DigitalSignature  string  `db:"digital_signature"`
	VerificationCode  string  `db:"verification_code"`
	Status            string  `db:"status"`
	RevocationReason  *string `db:"revocation_reason"`
	CreatedAt         int64   `db:"created_at"`
	UpdatedAt         int64   `db:"updated_at"`
}
