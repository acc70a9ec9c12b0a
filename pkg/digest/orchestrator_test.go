package digest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habrdigest/habrdigest/pkg/digest/mocks"
	"github.com/habrdigest/habrdigest/pkg/domain"
)

// fixture with one subscriber on one topic and two unseen articles,
// newest-first as the selector returns them
type tickFixture struct {
	store      *mocks.StoreMock
	summarizer *mocks.SummarizerMock
	messenger  *mocks.MessengerMock

	subscription *domain.Subscription
	receipts     map[int64]bool // articleID -> receipted
	sent         []string
	mu           sync.Mutex
}

func newTickFixture() *tickFixture {
	f := &tickFixture{
		subscription: &domain.Subscription{
			ID: 10, SubscriberID: 1, TopicID: 2, FrequencyHours: 24, Active: true,
		},
		receipts: map[int64]bool{},
	}

	articles := []*domain.Article{
		{ID: 102, SourceID: "a2", Title: "Новее", URL: "https://habr.com/ru/articles/102/", Author: "bob", Summary: "резюме 2"},
		{ID: 101, SourceID: "a1", Title: "Старее", URL: "https://habr.com/ru/articles/101/", Summary: "резюме 1"},
	}

	f.store = &mocks.StoreMock{
		GetSubscribersWithSubscriptionsFunc: func(_ context.Context) ([]*domain.Subscriber, error) {
			return []*domain.Subscriber{{ID: 1, ChatID: 555, Active: true}}, nil
		},
		GetActiveSubscriptionsFunc: func(_ context.Context, _ int64) ([]*domain.Subscription, error) {
			return []*domain.Subscription{f.subscription}, nil
		},
		GetSubscriberFunc: func(_ context.Context, id int64) (*domain.Subscriber, error) {
			return &domain.Subscriber{ID: id, ChatID: 555, Active: true}, nil
		},
		GetSubscriptionByTopicFunc: func(_ context.Context, _, _ int64) (*domain.Subscription, error) {
			return f.subscription, nil
		},
		GetTopicFunc: func(_ context.Context, id int64) (*domain.Topic, error) {
			return &domain.Topic{ID: id, Name: "Python", Slug: "python", Active: true}, nil
		},
		GetUnseenArticlesFunc: func(_ context.Context, _, _ int64, limit int) ([]*domain.Article, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var unseen []*domain.Article
			for _, a := range articles {
				if !f.receipts[a.ID] && len(unseen) < limit {
					unseen = append(unseen, a)
				}
			}
			return unseen, nil
		},
		GetArticleSummaryFunc: func(_ context.Context, _ int64) (string, error) { return "", nil },
		UpdateArticleSummaryFunc: func(_ context.Context, _ int64, _ string) error { return nil },
		MarkDeliveredFunc: func(_ context.Context, _, _ int64, articleIDs []int64, now time.Time) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, id := range articleIDs {
				if f.receipts[id] {
					return fmt.Errorf("duplicate receipt for article %d", id)
				}
				f.receipts[id] = true
			}
			f.subscription.LastDeliveredAt = &now
			return nil
		},
	}
	f.summarizer = &mocks.SummarizerMock{
		SummarizeFunc: func(_ context.Context, title, _ string) (string, error) {
			return "сводка: " + title, nil
		},
	}
	f.messenger = &mocks.MessengerMock{
		SendFunc: func(_ context.Context, _ int64, text string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.sent = append(f.sent, text)
			return nil
		},
	}
	return f
}

func TestDigester_RunTick_DeliversAndMarks(t *testing.T) {
	f := newTickFixture()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{
		ArticlesPerDigest: 5,
		NowFunc:           func() time.Time { return now },
	})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickStats{Processed: 1, Delivered: 1, Errors: 0}, stats)

	// one message containing both articles, newest first
	require.Len(t, f.sent, 1)
	msg := f.sent[0]
	assert.Contains(t, msg, "📰 Дайджест по теме: Python")
	assert.Contains(t, msg, "📄 1. Новее")
	assert.Contains(t, msg, "📄 2. Старее")
	assert.Contains(t, msg, "👤 Автор: bob")
	assert.Contains(t, msg, "🔗 https://habr.com/ru/articles/102/")

	// receipts for both articles, timestamp advanced in one call
	require.Len(t, f.store.MarkDeliveredCalls(), 1)
	assert.Equal(t, []int64{102, 101}, f.store.MarkDeliveredCalls()[0].ArticleIDs)
	assert.Equal(t, now, f.store.MarkDeliveredCalls()[0].Now)
	require.NotNil(t, f.subscription.LastDeliveredAt)

	// immediate second tick: not due, no new receipts, no new messages
	stats, err = d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickStats{Processed: 1, Delivered: 0, Errors: 0}, stats)
	assert.Len(t, f.sent, 1)
	assert.Len(t, f.store.MarkDeliveredCalls(), 1)
}

func TestDigester_RunTick_NoArticlesKeepsTimestamp(t *testing.T) {
	f := newTickFixture()
	f.store.GetUnseenArticlesFunc = func(_ context.Context, _, _ int64, _ int) ([]*domain.Article, error) {
		return nil, nil
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickStats{Processed: 1, Delivered: 0, Errors: 0}, stats)

	// nothing sent, timestamp untouched so the subscription is re-checked next tick
	assert.Empty(t, f.sent)
	assert.Empty(t, f.store.MarkDeliveredCalls())
	assert.Nil(t, f.subscription.LastDeliveredAt)
}

func TestDigester_RunTick_DispatchFailureWritesNothing(t *testing.T) {
	f := newTickFixture()
	f.messenger.SendFunc = func(_ context.Context, _ int64, _ string) error {
		return fmt.Errorf("telegram error: 502 Bad Gateway")
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickStats{Processed: 1, Delivered: 0, Errors: 1}, stats)

	// no receipts, no timestamp: the same articles are selected next tick
	assert.Empty(t, f.store.MarkDeliveredCalls())
	assert.Nil(t, f.subscription.LastDeliveredAt)
}

func TestDigester_RunTick_SummarizerDownStillDelivers(t *testing.T) {
	f := newTickFixture()
	f.summarizer.SummarizeFunc = func(_ context.Context, _, _ string) (string, error) {
		return "", fmt.Errorf("summarizer unreachable")
	}
	// articles have no cached summaries this time
	f.store.GetUnseenArticlesFunc = func(_ context.Context, _, _ int64, _ int) ([]*domain.Article, error) {
		return []*domain.Article{
			{ID: 102, Title: "Новее", URL: "https://habr.com/ru/articles/102/"},
		}, nil
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickStats{Processed: 1, Delivered: 1, Errors: 0}, stats)

	// digest went out with the fallback text, receipts written,
	// article not marked processed
	require.Len(t, f.sent, 1)
	assert.Contains(t, f.sent[0], "Краткое резюме: Новее")
	assert.Len(t, f.store.MarkDeliveredCalls(), 1)
	assert.Empty(t, f.store.UpdateArticleSummaryCalls())
}

func TestDigester_RunTick_MarkFailureCountsAsError(t *testing.T) {
	f := newTickFixture()
	f.store.MarkDeliveredFunc = func(_ context.Context, _, _ int64, _ []int64, _ time.Time) error {
		return fmt.Errorf("db locked")
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 0, stats.Delivered)
}

func TestDigester_RunTick_RespectsArticleLimit(t *testing.T) {
	f := newTickFixture()
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{ArticlesPerDigest: 1})

	stats, err := d.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Delivered)

	require.Len(t, f.store.MarkDeliveredCalls(), 1)
	assert.Equal(t, []int64{102}, f.store.MarkDeliveredCalls()[0].ArticleIDs) // newest only
}

func TestDigester_RunTick_SingleFlight(t *testing.T) {
	f := newTickFixture()
	release := make(chan struct{})
	started := make(chan struct{})
	f.store.GetSubscribersWithSubscriptionsFunc = func(_ context.Context) ([]*domain.Subscriber, error) {
		close(started)
		<-release
		return nil, nil
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	done := make(chan error, 1)
	go func() {
		_, err := d.RunTick(context.Background())
		done <- err
	}()

	<-started
	_, err := d.RunTick(context.Background())
	assert.ErrorIs(t, err, ErrTickInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestDigester_RunTick_StoreFailureAbortsTick(t *testing.T) {
	f := newTickFixture()
	f.store.GetSubscribersWithSubscriptionsFunc = func(_ context.Context) ([]*domain.Subscriber, error) {
		return nil, fmt.Errorf("database unreachable")
	}
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	_, err := d.RunTick(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get subscribers")
}

func TestDigester_RunTick_Cancellation(t *testing.T) {
	f := newTickFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})
	_, err := d.RunTick(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.sent)
}

func TestDigester_SendDigest(t *testing.T) {
	t.Run("manual digest bypasses due check", func(t *testing.T) {
		f := newTickFixture()
		now := time.Now()
		f.subscription.LastDeliveredAt = &now // not due, manual send still works

		d := NewDigester(f.store, f.summarizer, f.messenger, Params{})
		require.NoError(t, d.SendDigest(context.Background(), 1, 2))
		assert.Len(t, f.sent, 1)
		assert.Len(t, f.store.MarkDeliveredCalls(), 1)
	})

	t.Run("no articles is not an error", func(t *testing.T) {
		f := newTickFixture()
		f.store.GetUnseenArticlesFunc = func(_ context.Context, _, _ int64, _ int) ([]*domain.Article, error) {
			return nil, nil
		}
		d := NewDigester(f.store, f.summarizer, f.messenger, Params{})
		require.NoError(t, d.SendDigest(context.Background(), 1, 2))
		assert.Empty(t, f.sent)
	})

	t.Run("dispatch failure surfaces as error", func(t *testing.T) {
		f := newTickFixture()
		f.messenger.SendFunc = func(_ context.Context, _ int64, _ string) error {
			return fmt.Errorf("blocked by user")
		}
		d := NewDigester(f.store, f.summarizer, f.messenger, Params{})
		assert.Error(t, d.SendDigest(context.Background(), 1, 2))
	})

	t.Run("unknown subscription surfaces as error", func(t *testing.T) {
		f := newTickFixture()
		f.store.GetSubscriptionByTopicFunc = func(_ context.Context, _, _ int64) (*domain.Subscription, error) {
			return nil, fmt.Errorf("subscription not found")
		}
		d := NewDigester(f.store, f.summarizer, f.messenger, Params{})
		assert.Error(t, d.SendDigest(context.Background(), 1, 99))
	})
}

func TestDigester_Notifications(t *testing.T) {
	f := newTickFixture()
	d := NewDigester(f.store, f.summarizer, f.messenger, Params{})

	d.SendWelcome(context.Background(), 555)
	d.NotifyError(context.Background(), 555, "тема не найдена")

	require.Len(t, f.sent, 2)
	assert.Contains(t, f.sent[0], "Добро пожаловать")
	assert.Contains(t, f.sent[1], "тема не найдена")
}

func TestFormatDigest(t *testing.T) {
	articles := []*domain.Article{
		{Title: "Первая", URL: "https://habr.com/ru/articles/1/", Author: "alice"},
		{Title: "Вторая", URL: "https://habr.com/ru/articles/2/"},
	}
	msg := formatDigest("Go", articles, []string{"сводка один", "сводка два"})

	assert.Contains(t, msg, "📰 Дайджест по теме: Go\n\n")
	assert.Contains(t, msg, "📄 1. Первая\n👤 Автор: alice\n📝 сводка один\n🔗 https://habr.com/ru/articles/1/")
	// author line omitted when unknown
	assert.Contains(t, msg, "📄 2. Вторая\n📝 сводка два\n")
}
