package mailer

import "context"

// Service delivers one plain-text message to one recipient. Failures
// propagate to the caller; there is no retry.
type Service interface {
	Send(ctx context.Context, toEmail, subject, text string) error
}
