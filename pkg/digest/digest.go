// Package digest implements the delivery core: deciding which subscriptions
// are due, selecting unseen articles, gating summaries, and dispatching
// digests with at-most-once delivery per (subscriber, article) pair.
package digest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// ErrTickInProgress is returned when a tick is requested while another one
// is still running, ticks never overlap
var ErrTickInProgress = errors.New("delivery tick already in progress")

// Store provides the persistence operations the delivery core needs
type Store interface {
	GetSubscribersWithSubscriptions(ctx context.Context) ([]*domain.Subscriber, error)
	GetActiveSubscriptions(ctx context.Context, subscriberID int64) ([]*domain.Subscription, error)
	GetSubscriptionByTopic(ctx context.Context, subscriberID, topicID int64) (*domain.Subscription, error)
	GetSubscriber(ctx context.Context, id int64) (*domain.Subscriber, error)
	GetTopic(ctx context.Context, id int64) (*domain.Topic, error)
	GetUnseenArticles(ctx context.Context, subscriberID, topicID int64, limit int) ([]*domain.Article, error)
	GetArticleSummary(ctx context.Context, articleID int64) (string, error)
	UpdateArticleSummary(ctx context.Context, articleID int64, summary string) error
	MarkDelivered(ctx context.Context, subscriptionID, subscriberID int64, articleIDs []int64, now time.Time) error
}

// Summarizer produces a short summary for an article
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// Messenger dispatches a message to an external chat identity
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Params holds delivery tuning knobs
type Params struct {
	ArticlesPerDigest int              // articles per digest message
	NowFunc           func() time.Time // injected clock, defaults to time.Now
}

// Digester runs the delivery sweep over all active subscriptions
type Digester struct {
	store      Store
	summarizer Summarizer
	messenger  Messenger
	params     Params

	tickMu sync.Mutex // guarantees at most one in-flight tick
}

// NewDigester creates a delivery core with explicit dependencies
func NewDigester(store Store, summarizer Summarizer, messenger Messenger, params Params) *Digester {
	if params.ArticlesPerDigest <= 0 {
		params.ArticlesPerDigest = 5
	}
	if params.NowFunc == nil {
		params.NowFunc = time.Now
	}
	return &Digester{
		store:      store,
		summarizer: summarizer,
		messenger:  messenger,
		params:     params,
	}
}
