package dto

// EmailRequest is the payload published to the email_notifications topic.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
