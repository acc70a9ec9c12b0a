package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// SubscriptionRepository handles subscription-related database operations,
// including the transactional delivery mark that keeps the deduplication
// ledger consistent with the subscription timestamp
type SubscriptionRepository struct {
	db *sqlx.DB
}

// subscriptionSQL represents a subscription for SQL operations
type subscriptionSQL struct {
	ID              int64      `db:"id"`
	SubscriberID    int64      `db:"subscriber_id"`
	TopicID         int64      `db:"topic_id"`
	FrequencyHours  int        `db:"frequency_hours"`
	Active          bool       `db:"active"`
	CreatedAt       time.Time  `db:"created_at"`
	LastDeliveredAt *time.Time `db:"last_delivered_at"`
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(database *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: database}
}

// CreateSubscription inserts a new subscription. The partial unique index on
// active (subscriber, topic) pairs makes duplicate checks race-free; a
// conflict surfaces as ErrDuplicateSubscription.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (subscriber_id, topic_id, frequency_hours, active)
		VALUES (?, ?, ?, 1)
	`
	result, err := r.db.ExecContext(ctx, query, sub.SubscriberID, sub.TopicID, sub.FrequencyHours)
	if err != nil {
		if isUniqueError(err) {
			return ErrDuplicateSubscription
		}
		return fmt.Errorf("create subscription: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id
	sub.Active = true
	return nil
}

// GetSubscription retrieves a subscription by ID
func (r *SubscriptionRepository) GetSubscription(ctx context.Context, id int64) (*domain.Subscription, error) {
	var sqlSub subscriptionSQL
	err := r.db.GetContext(ctx, &sqlSub, "SELECT * FROM subscriptions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return r.toDomainSubscription(&sqlSub), nil
}

// GetSubscriptionByTopic retrieves the active subscription for a
// (subscriber, topic) pair
func (r *SubscriptionRepository) GetSubscriptionByTopic(ctx context.Context, subscriberID, topicID int64) (*domain.Subscription, error) {
	var sqlSub subscriptionSQL
	err := r.db.GetContext(ctx, &sqlSub,
		"SELECT * FROM subscriptions WHERE subscriber_id = ? AND topic_id = ? AND active = 1",
		subscriberID, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription by topic: %w", err)
	}
	return r.toDomainSubscription(&sqlSub), nil
}

// GetActiveSubscriptions retrieves all active subscriptions of a subscriber
func (r *SubscriptionRepository) GetActiveSubscriptions(ctx context.Context, subscriberID int64) ([]*domain.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE subscriber_id = ? AND active = 1
		ORDER BY id
	`
	var sqlSubs []subscriptionSQL
	if err := r.db.SelectContext(ctx, &sqlSubs, query, subscriberID); err != nil {
		return nil, fmt.Errorf("get active subscriptions: %w", err)
	}

	subs := make([]*domain.Subscription, len(sqlSubs))
	for i, s := range sqlSubs {
		subs[i] = r.toDomainSubscription(&s)
	}
	return subs, nil
}

// DeactivateSubscription marks a subscription inactive
func (r *SubscriptionRepository) DeactivateSubscription(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "UPDATE subscriptions SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// MarkDelivered records delivery of the given articles: one receipt per
// article plus the subscription's last_delivered_at, all in one transaction.
// Called only after the messenger confirmed dispatch, so a crash can never
// leave confirmed deliveries unmarked. Retried on SQLite lock errors.
func (r *SubscriptionRepository) MarkDelivered(ctx context.Context, subscriptionID, subscriberID int64, articleIDs []int64, now time.Time) error {
	if len(articleIDs) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		err := r.markDelivered(ctx, subscriptionID, subscriberID, articleIDs, now)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: err}
		}
		return nil
	})
}

func (r *SubscriptionRepository) markDelivered(ctx context.Context, subscriptionID, subscriberID int64, articleIDs []int64, now time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, articleID := range articleIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO delivery_receipts (subscriber_id, article_id, sent_at) VALUES (?, ?, ?)",
			subscriberID, articleID, now); err != nil {
			return fmt.Errorf("write delivery receipt for article %d: %w", articleID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE subscriptions SET last_delivered_at = ? WHERE id = ?", now, subscriptionID); err != nil {
		return fmt.Errorf("update last delivered: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delivery mark: %w", err)
	}
	return nil
}

// ReceiptExists checks the deduplication ledger for a (subscriber, article) pair
func (r *SubscriptionRepository) ReceiptExists(ctx context.Context, subscriberID, articleID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM delivery_receipts WHERE subscriber_id = ? AND article_id = ?)",
		subscriberID, articleID)
	if err != nil {
		return false, fmt.Errorf("check receipt exists: %w", err)
	}
	return exists, nil
}

// toDomainSubscription converts subscriptionSQL to domain.Subscription
func (r *SubscriptionRepository) toDomainSubscription(sqlSub *subscriptionSQL) *domain.Subscription {
	return &domain.Subscription{
		ID:              sqlSub.ID,
		SubscriberID:    sqlSub.SubscriberID,
		TopicID:         sqlSub.TopicID,
		FrequencyHours:  sqlSub.FrequencyHours,
		Active:          sqlSub.Active,
		CreatedAt:       sqlSub.CreatedAt,
		LastDeliveredAt: sqlSub.LastDeliveredAt,
	}
}
