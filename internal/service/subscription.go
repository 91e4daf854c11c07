// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkletter/inkletter/internal/email"
	"github.com/inkletter/inkletter/internal/metrics"
	"github.com/inkletter/inkletter/internal/model"
	"github.com/inkletter/inkletter/internal/repository"
)

// ErrUnknownToken indicates a confirmation token that maps to no subscriber.
// Deliberately covers both "never existed" and "no longer resolvable" to
// avoid leaking an enumeration signal.
var ErrUnknownToken = errors.New("unknown confirmation token")

// SubscriberStore is the persistence surface the subscription flow needs.
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, sub *model.Subscriber, token *model.ConfirmationToken) error
	GetSubscriberIDByToken(ctx context.Context, token string) (string, error)
	ConfirmSubscriber(ctx context.Context, subscriberID string) error
}

// TokenIssuer produces confirmation tokens.
type TokenIssuer interface {
	Generate() (string, error)
}

// SubscriptionService handles subscriber intake and confirmation.
type SubscriptionService struct {
	store   SubscriberStore
	issuer  TokenIssuer
	sender  email.Sender
	baseURL string
	metrics metrics.Recorder
}

// NewSubscriptionService creates a SubscriptionService.
// baseURL is the externally reachable address embedded in confirmation links.
func NewSubscriptionService(store SubscriberStore, issuer TokenIssuer, sender email.Sender, baseURL string, recorder metrics.Recorder) *SubscriptionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &SubscriptionService{
		store:   store,
		issuer:  issuer,
		sender:  sender,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		metrics: recorder,
	}
}

// SubscribeInput defines input for a new subscription request.
type SubscribeInput struct {
	Name  string
	Email string
}

// Subscribe validates the input, persists a pending subscriber together
// with its confirmation token in one transaction, and sends the
// confirmation email after commit.
//
// The email send is deliberately outside transactional scope: a failure
// there surfaces as an error even though the subscriber row is already
// committed. Callers must not assume an error response means no
// subscriber was created.
func (s *SubscriptionService) Subscribe(ctx context.Context, input SubscribeInput) (*model.Subscriber, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	confirmationToken, err := s.issuer.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	sub := &model.Subscriber{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		Status:       model.StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}

	if err := s.store.CreateSubscriber(ctx, sub, &model.ConfirmationToken{
		Token:        confirmationToken,
		SubscriberID: sub.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	s.metrics.IncSubscriptionCreated()

	link := s.confirmationLink(confirmationToken)
	html, text := email.ConfirmationBodies(sub.Name, link)

	err = s.sender.Send(ctx, email.SendParams{
		To:       sub.Email,
		Subject:  email.ConfirmationSubject,
		HTMLBody: html,
		TextBody: text,
	})
	if err != nil {
		s.metrics.IncEmailSendFailed("confirmation")
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	s.metrics.IncConfirmationEmailSent()

	return sub, nil
}

// Confirm redeems a confirmation token and transitions the bound
// subscriber to confirmed. Re-confirming an already-confirmed
// subscriber is a no-op success; tokens stay valid after redemption.
func (s *SubscriptionService) Confirm(ctx context.Context, confirmationToken string) error {
	subscriberID, err := s.store.GetSubscriberIDByToken(ctx, confirmationToken)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrUnknownToken
		}
		return fmt.Errorf("failed to resolve confirmation token: %w", err)
	}

	if err := s.store.ConfirmSubscriber(ctx, subscriberID); err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return ErrUnknownToken
		}
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	s.metrics.IncSubscriptionConfirmed()

	return nil
}

// confirmationLink builds the link embedded in confirmation emails.
func (s *SubscriptionService) confirmationLink(confirmationToken string) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, confirmationToken)
}
