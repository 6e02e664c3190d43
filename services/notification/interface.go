package notification

// EmailSender delivers a single email. Failure is reported synchronously to
// the caller; there is no retry.
type EmailSender interface {
	Send(toEmail, toName, subject, body string) error
}
