// Package model defines domain entities for the application.
package model

import "time"

// SubscriberStatus represents the confirmation state of a subscriber.
type SubscriberStatus string

const (
	StatusPendingConfirmation SubscriberStatus = "pending_confirmation"
	StatusConfirmed           SubscriberStatus = "confirmed"
)

// IsValid checks if the status is a known state.
func (s SubscriberStatus) IsValid() bool {
	return s == StatusPendingConfirmation || s == StatusConfirmed
}

// Subscriber represents a newsletter subscriber tracked through the
// confirmation state machine.
type Subscriber struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	Status       SubscriberStatus `json:"status"`
	SubscribedAt time.Time        `json:"subscribed_at"`
}

// IsConfirmed returns true if the subscriber has redeemed a confirmation token.
func (s *Subscriber) IsConfirmed() bool {
	return s.Status == StatusConfirmed
}

// ConfirmationToken binds a high-entropy token to a subscriber.
// Possession of the token proves control of the subscriber's email address.
type ConfirmationToken struct {
	Token        string
	SubscriberID string
}
