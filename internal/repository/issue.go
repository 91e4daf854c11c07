package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/inkletter/inkletter/internal/model"
)

// CreateNewsletterIssue records the audit row for a completed publish run.
// Written after the fan-out pass; per-recipient failures are listed, not
// rolled back.
func (r *Repository) CreateNewsletterIssue(ctx context.Context, issue *model.NewsletterIssue) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO newsletter_issues (id, title, sent_count, failed_count, failed_recipients, published_by, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		issue.ID,
		issue.Title,
		issue.SentCount,
		issue.FailedCount,
		pq.Array(issue.FailedRecipients),
		issue.PublishedBy,
		issue.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record newsletter issue: %w", err)
	}

	return nil
}
