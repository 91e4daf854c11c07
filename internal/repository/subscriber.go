package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inkletter/inkletter/internal/model"
)

// Common errors for subscriber repository operations.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrTokenNotFound      = errors.New("confirmation token not found")
)

// CreateSubscriber inserts a new subscriber and its confirmation token
// in a single transaction. Either both rows are committed or neither is;
// no reader ever observes a subscriber without a token.
func (r *Repository) CreateSubscriber(ctx context.Context, sub *model.Subscriber, token *model.ConfirmationToken) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO subscriptions (id, email, name, status, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		sub.ID,
		sub.Email,
		sub.Name,
		sub.Status,
		sub.SubscribedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)
	`,
		token.Token,
		token.SubscriberID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert confirmation token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit subscriber transaction: %w", err)
	}

	return nil
}

// GetSubscriberIDByToken resolves a confirmation token to its subscriber id.
func (r *Repository) GetSubscriberIDByToken(ctx context.Context, token string) (string, error) {
	query := `
		SELECT subscriber_id
		FROM subscription_tokens
		WHERE subscription_token = $1
	`

	var subscriberID string
	err := r.pool.QueryRow(ctx, query, token).Scan(&subscriberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to look up confirmation token: %w", err)
	}

	return subscriberID, nil
}

// ConfirmSubscriber transitions a subscriber to confirmed status.
// Confirming an already-confirmed subscriber is a no-op success.
func (r *Repository) ConfirmSubscriber(ctx context.Context, subscriberID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions
		SET status = $1
		WHERE id = $2
	`,
		model.StatusConfirmed,
		subscriberID,
	)
	if err != nil {
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}

// GetSubscriberByID retrieves a subscriber by id.
func (r *Repository) GetSubscriberByID(ctx context.Context, id string) (*model.Subscriber, error) {
	query := `
		SELECT id, email, name, status, subscribed_at
		FROM subscriptions
		WHERE id = $1
	`

	var sub model.Subscriber
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Name,
		&sub.Status,
		&sub.SubscribedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber by ID: %w", err)
	}

	return &sub, nil
}

// GetConfirmedSubscribers returns all subscribers with confirmed status.
// This is a point-in-time snapshot; subscribers confirming mid-publish
// may or may not be included.
func (r *Repository) GetConfirmedSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	query := `
		SELECT id, email, name, status, subscribed_at
		FROM subscriptions
		WHERE status = $1
	`

	rows, err := r.pool.Query(ctx, query, model.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmed subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*model.Subscriber
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.Name,
			&sub.Status,
			&sub.SubscribedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscribers: %w", err)
	}

	return subscribers, nil
}
