package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

func setupTestDB(t *testing.T) (*Repositories, func()) {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	return repos, func() {
		assert.NoError(t, repos.Close())
	}
}

func createTestSubscriber(t *testing.T, repos *Repositories, chatID int64) *domain.Subscriber {
	t.Helper()
	sub := &domain.Subscriber{
		ChatID:    chatID,
		Username:  fmt.Sprintf("user%d", chatID),
		FirstName: "Test",
	}
	require.NoError(t, repos.Subscriber.CreateSubscriber(context.Background(), sub))
	return sub
}

func createTestTopic(t *testing.T, repos *Repositories, name string) *domain.Topic {
	t.Helper()
	topic := &domain.Topic{Name: name, Description: "test topic"}
	require.NoError(t, repos.Topic.CreateTopic(context.Background(), topic))
	return topic
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repos.Ping(context.Background()))

	t.Run("subscriber operations", func(t *testing.T) {
		sub := createTestSubscriber(t, repos, 100)
		assert.NotZero(t, sub.ID)
		assert.True(t, sub.Active)

		retrieved, err := repos.Subscriber.GetSubscriberByChatID(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, sub.ID, retrieved.ID)
		assert.Equal(t, "user100", retrieved.Username)

		_, err = repos.Subscriber.GetSubscriberByChatID(context.Background(), 999)
		assert.ErrorIs(t, err, ErrSubscriberNotFound)
	})

	t.Run("topic operations", func(t *testing.T) {
		topic := createTestTopic(t, repos, "Python")
		assert.Equal(t, "python", topic.Slug)

		bySlug, err := repos.Topic.GetTopicBySlug(context.Background(), "python")
		require.NoError(t, err)
		assert.Equal(t, topic.ID, bySlug.ID)

		// same name violates uniqueness
		dup := &domain.Topic{Name: "Python"}
		assert.ErrorIs(t, repos.Topic.CreateTopic(context.Background(), dup), ErrDuplicateTopic)

		// ensure is idempotent
		ensured, err := repos.Topic.EnsureTopic(context.Background(), "Python", "whatever")
		require.NoError(t, err)
		assert.Equal(t, topic.ID, ensured.ID)

		topics, err := repos.Topic.GetTopics(context.Background(), true)
		require.NoError(t, err)
		assert.NotEmpty(t, topics)
	})
}

func TestTopicRepository_RejectsUnusableSlug(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	// cyrillic-only names slugify to nothing and can never map to a hub URL
	for _, name := range []string{"Разработка", "Веб Разработка"} {
		err := repos.Topic.CreateTopic(context.Background(), &domain.Topic{Name: name})
		require.Error(t, err, "name %q", name)
		assert.Contains(t, err.Error(), "no usable slug")
	}

	// explicitly supplied slug without alphanumerics is rejected too
	err := repos.Topic.CreateTopic(context.Background(), &domain.Topic{Name: "Веб", Slug: "-"})
	require.Error(t, err)

	topics, err := repos.Topic.GetTopics(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestSubscriptionRepository_DuplicateActivePair(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 200)
	topic := createTestTopic(t, repos, "DevOps")

	first := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 24}
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), first))

	// the partial unique index rejects a second active pair
	second := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 12}
	err := repos.Subscription.CreateSubscription(context.Background(), second)
	assert.ErrorIs(t, err, ErrDuplicateSubscription)

	// after deactivation the pair can be re-subscribed
	require.NoError(t, repos.Subscription.DeactivateSubscription(context.Background(), first.ID))
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), second))
}

func TestArticleRepository_UpsertReusesExisting(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, repos, "Security")

	article := &domain.Article{
		SourceID: "src-1",
		Title:    "First version",
		URL:      "https://example.com/articles/1",
		Topics:   []string{"Security"},
	}
	created, err := repos.Article.UpsertArticle(context.Background(), article, []int64{topic.ID})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, article.ID)

	// same source id is never duplicated, existing row reused
	again := &domain.Article{
		SourceID: "src-1",
		Title:    "Second version",
		URL:      "https://example.com/articles/1-copy",
	}
	created, err = repos.Article.UpsertArticle(context.Background(), again, []int64{topic.ID})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, article.ID, again.ID)

	stored, err := repos.Article.GetArticleBySourceID(context.Background(), "src-1")
	require.NoError(t, err)
	assert.Equal(t, "First version", stored.Title)
}

func TestArticleRepository_GetUnseenArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 300)
	topic := createTestTopic(t, repos, "Machine Learning")
	other := createTestTopic(t, repos, "Database")

	// three articles on the topic, one on another topic
	var articles []*domain.Article
	for i := 1; i <= 3; i++ {
		a := &domain.Article{
			SourceID: fmt.Sprintf("ml-%d", i),
			Title:    fmt.Sprintf("ML Article %d", i),
			URL:      fmt.Sprintf("https://example.com/articles/ml-%d", i),
		}
		_, err := repos.Article.UpsertArticle(context.Background(), a, []int64{topic.ID})
		require.NoError(t, err)
		articles = append(articles, a)
	}
	offTopic := &domain.Article{SourceID: "db-1", Title: "DB Article", URL: "https://example.com/articles/db-1"}
	_, err := repos.Article.UpsertArticle(context.Background(), offTopic, []int64{other.ID})
	require.NoError(t, err)

	t.Run("newest first, topic scoped", func(t *testing.T) {
		unseen, err := repos.Article.GetUnseenArticles(context.Background(), sub.ID, topic.ID, 10)
		require.NoError(t, err)
		require.Len(t, unseen, 3)
		// equal created_at falls back to id DESC, so insertion order reversed
		assert.Equal(t, "ml-3", unseen[0].SourceID)
		assert.Equal(t, "ml-2", unseen[1].SourceID)
		assert.Equal(t, "ml-1", unseen[2].SourceID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		unseen, err := repos.Article.GetUnseenArticles(context.Background(), sub.ID, topic.ID, 2)
		require.NoError(t, err)
		assert.Len(t, unseen, 2)
	})

	t.Run("receipted articles excluded regardless of topic", func(t *testing.T) {
		subscription := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 24}
		require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), subscription))

		now := time.Now().UTC()
		err := repos.Subscription.MarkDelivered(context.Background(), subscription.ID, sub.ID,
			[]int64{articles[2].ID}, now)
		require.NoError(t, err)

		unseen, err := repos.Article.GetUnseenArticles(context.Background(), sub.ID, topic.ID, 10)
		require.NoError(t, err)
		require.Len(t, unseen, 2)
		for _, a := range unseen {
			assert.NotEqual(t, articles[2].ID, a.ID)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		emptyTopic := createTestTopic(t, repos, "Mobile Development")
		unseen, err := repos.Article.GetUnseenArticles(context.Background(), sub.ID, emptyTopic.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, unseen)
	})
}

func TestSubscriptionRepository_MarkDelivered(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 400)
	topic := createTestTopic(t, repos, "JavaScript")

	subscription := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 24}
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), subscription))
	assert.Nil(t, subscription.LastDeliveredAt)

	a1 := &domain.Article{SourceID: "js-1", Title: "JS 1", URL: "https://example.com/articles/js-1"}
	a2 := &domain.Article{SourceID: "js-2", Title: "JS 2", URL: "https://example.com/articles/js-2"}
	_, err := repos.Article.UpsertArticle(context.Background(), a1, []int64{topic.ID})
	require.NoError(t, err)
	_, err = repos.Article.UpsertArticle(context.Background(), a2, []int64{topic.ID})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Subscription.MarkDelivered(context.Background(),
		subscription.ID, sub.ID, []int64{a1.ID, a2.ID}, now))

	// receipts written for both articles
	for _, id := range []int64{a1.ID, a2.ID} {
		exists, err := repos.Subscription.ReceiptExists(context.Background(), sub.ID, id)
		require.NoError(t, err)
		assert.True(t, exists)
	}

	// timestamp advanced in the same transaction
	updated, err := repos.Subscription.GetSubscription(context.Background(), subscription.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastDeliveredAt)
	assert.Equal(t, now, updated.LastDeliveredAt.UTC())

	// a duplicate receipt violates the ledger's unique constraint, so the
	// whole transaction rolls back and at-most-once holds
	err = repos.Subscription.MarkDelivered(context.Background(),
		subscription.ID, sub.ID, []int64{a1.ID}, now.Add(time.Hour))
	require.Error(t, err)

	after, err := repos.Subscription.GetSubscription(context.Background(), subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, now, after.LastDeliveredAt.UTC())

	// empty article list is a no-op
	require.NoError(t, repos.Subscription.MarkDelivered(context.Background(),
		subscription.ID, sub.ID, nil, now.Add(2*time.Hour)))
}

func TestSubscriberRepository_DeactivateCascades(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 500)
	topic := createTestTopic(t, repos, "Web Development")

	subscription := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 12}
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), subscription))

	article := &domain.Article{SourceID: "web-1", Title: "Web 1", URL: "https://example.com/articles/web-1"}
	_, err := repos.Article.UpsertArticle(context.Background(), article, []int64{topic.ID})
	require.NoError(t, err)
	require.NoError(t, repos.Subscription.MarkDelivered(context.Background(),
		subscription.ID, sub.ID, []int64{article.ID}, time.Now()))

	require.NoError(t, repos.Subscriber.DeactivateSubscriber(context.Background(), sub.ID))

	subs, err := repos.Subscription.GetActiveSubscriptions(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)

	// receipts survive deactivation, the ledger is append-only
	exists, err := repos.Subscription.ReceiptExists(context.Background(), sub.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	withSubs, err := repos.Subscriber.GetSubscribersWithSubscriptions(context.Background())
	require.NoError(t, err)
	for _, s := range withSubs {
		assert.NotEqual(t, sub.ID, s.ID)
	}
}

func TestArticleRepository_Summary(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	article := &domain.Article{SourceID: "sum-1", Title: "Sum 1", URL: "https://example.com/articles/sum-1"}
	_, err := repos.Article.UpsertArticle(context.Background(), article, nil)
	require.NoError(t, err)

	summary, err := repos.Article.GetArticleSummary(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Empty(t, summary)

	unprocessed, err := repos.Article.GetUnprocessedArticles(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, unprocessed, 1)

	require.NoError(t, repos.Article.UpdateArticleSummary(context.Background(), article.ID, "short recap"))

	summary, err = repos.Article.GetArticleSummary(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, "short recap", summary)

	stored, err := repos.Article.GetArticle(context.Background(), article.ID)
	require.NoError(t, err)
	assert.True(t, stored.Processed)

	unprocessed, err = repos.Article.GetUnprocessedArticles(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, unprocessed)
}

func TestArticleRepository_CleanupKeepsUnreceipted(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 600)
	topic := createTestTopic(t, repos, "Go")

	sent := &domain.Article{SourceID: "old-sent", Title: "Old sent", URL: "https://example.com/articles/old-sent"}
	unsent := &domain.Article{SourceID: "old-unsent", Title: "Old unsent", URL: "https://example.com/articles/old-unsent"}
	_, err := repos.Article.UpsertArticle(context.Background(), sent, []int64{topic.ID})
	require.NoError(t, err)
	_, err = repos.Article.UpsertArticle(context.Background(), unsent, []int64{topic.ID})
	require.NoError(t, err)

	subscription := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 24}
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), subscription))
	require.NoError(t, repos.Subscription.MarkDelivered(context.Background(),
		subscription.ID, sub.ID, []int64{sent.ID}, time.Now()))

	// cutoff in the future makes both articles "old"
	deleted, err := repos.Article.CleanupOldArticles(context.Background(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// the receipted article is gone, the never-sent one is retained
	_, err = repos.Article.GetArticle(context.Background(), sent.ID)
	assert.Error(t, err)
	_, err = repos.Article.GetArticle(context.Background(), unsent.ID)
	assert.NoError(t, err)
}

func TestIngestionRepository_RunLifecycle(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repos.Ingestion.StartRun(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, id)

	runs, err := repos.Ingestion.GetRecentRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunStatusRunning, runs[0].Status)
	assert.Nil(t, runs[0].FinishedAt)

	require.NoError(t, repos.Ingestion.CompleteRun(context.Background(), id, 15, 7))

	runs, err = repos.Ingestion.GetRecentRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, 15, runs[0].ArticlesFound)
	assert.Equal(t, 7, runs[0].ArticlesProcessed)
	assert.NotNil(t, runs[0].FinishedAt)

	failedID, err := repos.Ingestion.StartRun(context.Background())
	require.NoError(t, err)
	require.NoError(t, repos.Ingestion.FailRun(context.Background(), failedID, "scrape timeout"))

	runs, err = repos.Ingestion.GetRecentRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunStatusFailed, runs[0].Status)
	assert.Equal(t, "scrape timeout", runs[0].Error)

	deleted, err := repos.Ingestion.CleanupOldRuns(context.Background(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestRepositories_GetStats(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	sub := createTestSubscriber(t, repos, 700)
	topic := createTestTopic(t, repos, "Databases")
	subscription := &domain.Subscription{SubscriberID: sub.ID, TopicID: topic.ID, FrequencyHours: 24}
	require.NoError(t, repos.Subscription.CreateSubscription(context.Background(), subscription))

	article := &domain.Article{SourceID: "st-1", Title: "Stat", URL: "https://example.com/articles/st-1"}
	_, err := repos.Article.UpsertArticle(context.Background(), article, []int64{topic.ID})
	require.NoError(t, err)

	stats, err := repos.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Subscribers)
	assert.Equal(t, int64(1), stats.ActiveSubscriptions)
	assert.Equal(t, int64(1), stats.Articles)
	assert.Equal(t, int64(0), stats.ProcessedArticles)
	assert.Equal(t, int64(0), stats.DeliveryReceipts)
}
