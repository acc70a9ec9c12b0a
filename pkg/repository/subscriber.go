package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// SubscriberRepository handles subscriber-related database operations
type SubscriberRepository struct {
	db *sqlx.DB
}

// subscriberSQL represents a subscriber for SQL operations
type subscriberSQL struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(database *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: database}
}

// CreateSubscriber inserts a new subscriber
func (r *SubscriberRepository) CreateSubscriber(ctx context.Context, sub *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (chat_id, username, first_name, last_name, active)
		VALUES (?, ?, ?, ?, 1)
	`
	result, err := r.db.ExecContext(ctx, query, sub.ChatID, sub.Username, sub.FirstName, sub.LastName)
	if err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id
	sub.Active = true
	return nil
}

// GetSubscriber retrieves a subscriber by ID
func (r *SubscriberRepository) GetSubscriber(ctx context.Context, id int64) (*domain.Subscriber, error) {
	var sqlSub subscriberSQL
	err := r.db.GetContext(ctx, &sqlSub, "SELECT * FROM subscribers WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return r.toDomainSubscriber(&sqlSub), nil
}

// GetSubscriberByChatID retrieves a subscriber by external chat identity
func (r *SubscriberRepository) GetSubscriberByChatID(ctx context.Context, chatID int64) (*domain.Subscriber, error) {
	var sqlSub subscriberSQL
	err := r.db.GetContext(ctx, &sqlSub, "SELECT * FROM subscribers WHERE chat_id = ?", chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber by chat id: %w", err)
	}
	return r.toDomainSubscriber(&sqlSub), nil
}

// GetSubscribersWithSubscriptions returns active subscribers having at least
// one active subscription. This is the population a delivery tick sweeps.
func (r *SubscriberRepository) GetSubscribersWithSubscriptions(ctx context.Context) ([]*domain.Subscriber, error) {
	query := `
		SELECT DISTINCT s.* FROM subscribers s
		JOIN subscriptions sub ON sub.subscriber_id = s.id
		WHERE s.active = 1 AND sub.active = 1
		ORDER BY s.id
	`
	var sqlSubs []subscriberSQL
	if err := r.db.SelectContext(ctx, &sqlSubs, query); err != nil {
		return nil, fmt.Errorf("get subscribers with subscriptions: %w", err)
	}

	subs := make([]*domain.Subscriber, len(sqlSubs))
	for i, s := range sqlSubs {
		subs[i] = r.toDomainSubscriber(&s)
	}
	return subs, nil
}

// DeactivateSubscriber marks a subscriber inactive and deactivates all
// of their subscriptions in one transaction. Delivery receipts are kept
// for audit and deduplication, never deleted here.
func (r *SubscriberRepository) DeactivateSubscriber(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		"UPDATE subscribers SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate subscriber: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSubscriberNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE subscriptions SET active = 0 WHERE subscriber_id = ?", id); err != nil {
		return fmt.Errorf("deactivate subscriptions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit deactivation: %w", err)
	}
	return nil
}

// toDomainSubscriber converts subscriberSQL to domain.Subscriber
func (r *SubscriberRepository) toDomainSubscriber(sqlSub *subscriberSQL) *domain.Subscriber {
	return &domain.Subscriber{
		ID:        sqlSub.ID,
		ChatID:    sqlSub.ChatID,
		Username:  sqlSub.Username,
		FirstName: sqlSub.FirstName,
		LastName:  sqlSub.LastName,
		Active:    sqlSub.Active,
		CreatedAt: sqlSub.CreatedAt,
		UpdatedAt: sqlSub.UpdatedAt,
	}
}
