package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/inkletter/inkletter/internal/email"
	"github.com/inkletter/inkletter/internal/metrics"
	"github.com/inkletter/inkletter/internal/model"
)

// Newsletter validation errors.
var (
	ErrMissingTitle   = errors.New("newsletter title is required")
	ErrMissingContent = errors.New("newsletter content is required")
)

// PublishStore is the persistence surface the publish flow needs.
type PublishStore interface {
	GetConfirmedSubscribers(ctx context.Context) ([]*model.Subscriber, error)
	CreateNewsletterIssue(ctx context.Context, issue *model.NewsletterIssue) error
}

// NewsletterService dispatches newsletter content to confirmed subscribers.
type NewsletterService struct {
	store   PublishStore
	sender  email.Sender
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewNewsletterService creates a NewsletterService.
func NewNewsletterService(store PublishStore, sender email.Sender, logger *slog.Logger, recorder metrics.Recorder) *NewsletterService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &NewsletterService{
		store:   store,
		sender:  sender,
		logger:  logger.With("component", "service.newsletter"),
		metrics: recorder,
	}
}

// PublishInput defines input for a publish request.
type PublishInput struct {
	Content     model.NewsletterContent
	PublishedBy string
}

// PublishReport summarizes a completed fan-out pass.
type PublishReport struct {
	IssueID          string
	Sent             int
	Failed           int
	FailedRecipients []string
}

// Publish validates the content, snapshots the confirmed subscribers, and
// sends the issue to each of them. Fan-out is best-effort: one recipient's
// failure never aborts delivery to the rest, and nothing is retried here.
// No transaction is held across the network sends.
func (s *NewsletterService) Publish(ctx context.Context, input PublishInput) (*PublishReport, error) {
	if err := validateContent(input.Content); err != nil {
		return nil, err
	}

	subscribers, err := s.store.GetConfirmedSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch confirmed subscribers: %w", err)
	}

	report := &PublishReport{
		IssueID: ulid.Make().String(),
	}

	start := time.Now()

	for _, sub := range subscribers {
		err := s.sender.Send(ctx, email.SendParams{
			To:       sub.Email,
			Subject:  input.Content.Title,
			HTMLBody: input.Content.HTMLBody,
			TextBody: input.Content.TextBody,
		})
		if err != nil {
			s.metrics.IncEmailSendFailed("newsletter")
			report.Failed++
			report.FailedRecipients = append(report.FailedRecipients, sub.Email)
			s.logger.Warn("newsletter delivery failed",
				"issue_id", report.IssueID,
				"subscriber_id", sub.ID,
				"error", err,
			)
			continue
		}

		s.metrics.IncNewsletterEmailSent()
		report.Sent++
	}

	s.metrics.ObservePublishBatchSize(len(subscribers))
	s.metrics.ObservePublishDuration(time.Since(start))

	issue := &model.NewsletterIssue{
		ID:               report.IssueID,
		Title:            input.Content.Title,
		SentCount:        report.Sent,
		FailedCount:      report.Failed,
		FailedRecipients: report.FailedRecipients,
		PublishedBy:      input.PublishedBy,
		PublishedAt:      time.Now().UTC(),
	}
	if err := s.store.CreateNewsletterIssue(ctx, issue); err != nil {
		// The emails are already out; the audit row is advisory.
		s.logger.Error("failed to record newsletter issue",
			"issue_id", report.IssueID,
			"error", err,
		)
	}

	s.logger.Info("newsletter published",
		"issue_id", report.IssueID,
		"sent", report.Sent,
		"failed", report.Failed,
	)

	return report, nil
}

// validateContent checks a newsletter payload before any store access.
func validateContent(content model.NewsletterContent) error {
	if strings.TrimSpace(content.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(content.TextBody) == "" || strings.TrimSpace(content.HTMLBody) == "" {
		return ErrMissingContent
	}
	return nil
}
