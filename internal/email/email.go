// Package email provides the outbound email transport.
// Delivery is best-effort: failures are reported to the caller,
// never retried or queued here.
package email

import (
	"context"
	"errors"
)

// Common errors for email operations.
var (
	// ErrInvalidParams indicates the message is missing required fields.
	ErrInvalidParams = errors.New("invalid email parameters")
	// ErrSendFailed indicates the transport rejected or failed the delivery.
	ErrSendFailed = errors.New("failed to send email")
)

// SendParams is a fully-formed message handed to the transport.
type SendParams struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Validate checks that all required message fields are present.
func (p SendParams) Validate() error {
	if p.To == "" || p.Subject == "" || p.HTMLBody == "" || p.TextBody == "" {
		return ErrInvalidParams
	}
	return nil
}

// Sender delivers a single message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}
