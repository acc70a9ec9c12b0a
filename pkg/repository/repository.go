package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/habrdigest/habrdigest/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// named errors for data-integrity violations, surfaced to callers
// instead of raw constraint failures
var (
	ErrDuplicateSubscription = errors.New("active subscription for this topic already exists")
	ErrDuplicateTopic        = errors.New("topic with this name or slug already exists")
	ErrTopicNotFound         = errors.New("topic not found")
	ErrSubscriberNotFound    = errors.New("subscriber not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
)

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Subscriber   *SubscriberRepository
	Topic        *TopicRepository
	Subscription *SubscriptionRepository
	Article      *ArticleRepository
	Ingestion    *IngestionRepository
	DB           *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:habrdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	if err := initSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	repos := &Repositories{
		Subscriber:   NewSubscriberRepository(db),
		Topic:        NewTopicRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Article:      NewArticleRepository(db),
		Ingestion:    NewIngestionRepository(db),
		DB:           db,
	}

	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// GetStats returns store-wide counters
func (r *Repositories) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}
	queries := []struct {
		dst   *int64
		query string
	}{
		{&stats.Subscribers, "SELECT COUNT(*) FROM subscribers"},
		{&stats.ActiveSubscribers, "SELECT COUNT(*) FROM subscribers WHERE active = 1"},
		{&stats.Topics, "SELECT COUNT(*) FROM topics"},
		{&stats.ActiveTopics, "SELECT COUNT(*) FROM topics WHERE active = 1"},
		{&stats.Articles, "SELECT COUNT(*) FROM articles"},
		{&stats.ProcessedArticles, "SELECT COUNT(*) FROM articles WHERE processed = 1"},
		{&stats.ActiveSubscriptions, "SELECT COUNT(*) FROM subscriptions WHERE active = 1"},
		{&stats.DeliveryReceipts, "SELECT COUNT(*) FROM delivery_receipts"},
	}
	for _, q := range queries {
		if err := r.DB.GetContext(ctx, q.dst, q.query); err != nil {
			return nil, fmt.Errorf("stats query %q: %w", q.query, err)
		}
	}
	return stats, nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a SQLite unique constraint violation
func isUniqueError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
