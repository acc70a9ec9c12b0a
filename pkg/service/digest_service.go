// Package service provides unified access to the repositories for the
// delivery core, the scheduler, and the HTTP server. It is the single place
// where subscription business rules (frequency bounds, registration,
// default topics) live.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/habrdigest/habrdigest/pkg/config"
	"github.com/habrdigest/habrdigest/pkg/domain"
	"github.com/habrdigest/habrdigest/pkg/repository"
)

// ErrFrequencyOutOfRange is returned when a requested delivery frequency
// falls outside the configured bounds
var ErrFrequencyOutOfRange = errors.New("delivery frequency out of allowed range")

// defaultTopics are seeded on startup so a fresh install has something
// to subscribe to
var defaultTopics = []string{
	"Python",
	"JavaScript",
	"DevOps",
	"Machine Learning",
	"Web Development",
	"Mobile Development",
	"Database",
	"Security",
}

// DigestService wraps the repositories behind one facade
type DigestService struct {
	repos *repository.Repositories
	cfg   config.DigestConfig
}

// NewDigestService creates a new digest service
func NewDigestService(repos *repository.Repositories, cfg config.DigestConfig) *DigestService {
	if cfg.MinFrequencyHours == 0 {
		cfg.MinFrequencyHours = 6
	}
	if cfg.MaxFrequencyHours == 0 {
		cfg.MaxFrequencyHours = 24
	}
	return &DigestService{repos: repos, cfg: cfg}
}

// SeedDefaultTopics ensures the default topic set exists, idempotent
func (s *DigestService) SeedDefaultTopics(ctx context.Context) error {
	for _, name := range defaultTopics {
		if _, err := s.repos.Topic.EnsureTopic(ctx, name, ""); err != nil {
			return fmt.Errorf("seed topic %q: %w", name, err)
		}
	}
	lgr.Printf("[INFO] default topics seeded: %d", len(defaultTopics))
	return nil
}

// EnsureSubscriber registers a subscriber by chat identity, creating the
// record on first contact. Returns the subscriber and whether it was created.
func (s *DigestService) EnsureSubscriber(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, bool, error) {
	existing, err := s.repos.Subscriber.GetSubscriberByChatID(ctx, sub.ChatID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrSubscriberNotFound) {
		return nil, false, err
	}

	if err := s.repos.Subscriber.CreateSubscriber(ctx, sub); err != nil {
		return nil, false, fmt.Errorf("create subscriber: %w", err)
	}
	lgr.Printf("[INFO] new subscriber %d registered (chat %d)", sub.ID, sub.ChatID)
	return sub, true, nil
}

// Subscribe creates an active subscription with a validated frequency.
// Duplicate active subscriptions surface as repository.ErrDuplicateSubscription.
func (s *DigestService) Subscribe(ctx context.Context, subscriberID, topicID int64, frequencyHours int) (*domain.Subscription, error) {
	if frequencyHours < s.cfg.MinFrequencyHours || frequencyHours > s.cfg.MaxFrequencyHours {
		return nil, fmt.Errorf("%w: %d hours, allowed %d-%d",
			ErrFrequencyOutOfRange, frequencyHours, s.cfg.MinFrequencyHours, s.cfg.MaxFrequencyHours)
	}

	// fail early with a clear error rather than a foreign key violation
	if _, err := s.repos.Subscriber.GetSubscriber(ctx, subscriberID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Topic.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}

	sub := &domain.Subscription{SubscriberID: subscriberID, TopicID: topicID, FrequencyHours: frequencyHours}
	if err := s.repos.Subscription.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe deactivates the active subscription for a (subscriber, topic) pair
func (s *DigestService) Unsubscribe(ctx context.Context, subscriberID, topicID int64) error {
	sub, err := s.repos.Subscription.GetSubscriptionByTopic(ctx, subscriberID, topicID)
	if err != nil {
		return err
	}
	return s.repos.Subscription.DeactivateSubscription(ctx, sub.ID)
}

// Deactivate marks a subscriber inactive along with all their subscriptions
func (s *DigestService) Deactivate(ctx context.Context, subscriberID int64) error {
	return s.repos.Subscriber.DeactivateSubscriber(ctx, subscriberID)
}

// Topic management

func (s *DigestService) CreateTopic(ctx context.Context, topic *domain.Topic) error {
	return s.repos.Topic.CreateTopic(ctx, topic)
}

func (s *DigestService) GetTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	return s.repos.Topic.GetTopic(ctx, id)
}

func (s *DigestService) GetTopicBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	return s.repos.Topic.GetTopicBySlug(ctx, slug)
}

func (s *DigestService) GetTopics(ctx context.Context, activeOnly bool) ([]*domain.Topic, error) {
	return s.repos.Topic.GetTopics(ctx, activeOnly)
}

func (s *DigestService) UpdateTopicStatus(ctx context.Context, id int64, active bool) error {
	return s.repos.Topic.UpdateTopicStatus(ctx, id, active)
}

// Subscriber and subscription lookups

func (s *DigestService) GetSubscriber(ctx context.Context, id int64) (*domain.Subscriber, error) {
	return s.repos.Subscriber.GetSubscriber(ctx, id)
}

func (s *DigestService) GetSubscriberByChatID(ctx context.Context, chatID int64) (*domain.Subscriber, error) {
	return s.repos.Subscriber.GetSubscriberByChatID(ctx, chatID)
}

func (s *DigestService) GetSubscribersWithSubscriptions(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.repos.Subscriber.GetSubscribersWithSubscriptions(ctx)
}

func (s *DigestService) GetActiveSubscriptions(ctx context.Context, subscriberID int64) ([]*domain.Subscription, error) {
	return s.repos.Subscription.GetActiveSubscriptions(ctx, subscriberID)
}

func (s *DigestService) GetSubscriptionByTopic(ctx context.Context, subscriberID, topicID int64) (*domain.Subscription, error) {
	return s.repos.Subscription.GetSubscriptionByTopic(ctx, subscriberID, topicID)
}

// Article and delivery operations

func (s *DigestService) UpsertArticle(ctx context.Context, article *domain.Article, topicIDs []int64) (bool, error) {
	return s.repos.Article.UpsertArticle(ctx, article, topicIDs)
}

func (s *DigestService) GetUnseenArticles(ctx context.Context, subscriberID, topicID int64, limit int) ([]*domain.Article, error) {
	return s.repos.Article.GetUnseenArticles(ctx, subscriberID, topicID, limit)
}

func (s *DigestService) GetUnprocessedArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	return s.repos.Article.GetUnprocessedArticles(ctx, limit)
}

func (s *DigestService) GetArticleSummary(ctx context.Context, articleID int64) (string, error) {
	return s.repos.Article.GetArticleSummary(ctx, articleID)
}

func (s *DigestService) UpdateArticleSummary(ctx context.Context, articleID int64, summary string) error {
	return s.repos.Article.UpdateArticleSummary(ctx, articleID, summary)
}

func (s *DigestService) MarkDelivered(ctx context.Context, subscriptionID, subscriberID int64, articleIDs []int64, now time.Time) error {
	return s.repos.Subscription.MarkDelivered(ctx, subscriptionID, subscriberID, articleIDs, now)
}

func (s *DigestService) CleanupOldArticles(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.repos.Article.CleanupOldArticles(ctx, olderThan)
}

// Ingestion run audit

func (s *DigestService) StartRun(ctx context.Context) (int64, error) {
	return s.repos.Ingestion.StartRun(ctx)
}

func (s *DigestService) CompleteRun(ctx context.Context, id int64, found, processed int) error {
	return s.repos.Ingestion.CompleteRun(ctx, id, found, processed)
}

func (s *DigestService) FailRun(ctx context.Context, id int64, errMsg string) error {
	return s.repos.Ingestion.FailRun(ctx, id, errMsg)
}

func (s *DigestService) GetRecentRuns(ctx context.Context, limit int) ([]*domain.IngestionRun, error) {
	return s.repos.Ingestion.GetRecentRuns(ctx, limit)
}

func (s *DigestService) CleanupOldRuns(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.repos.Ingestion.CleanupOldRuns(ctx, olderThan)
}

// GetStats returns store-wide counters
func (s *DigestService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.repos.GetStats(ctx)
}
