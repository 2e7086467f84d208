package model

// ConfirmationNotification is queued for the mailer after registration
// and on resend.
type ConfirmationNotification struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Code      int    `json:"confirmation_code"`
}
