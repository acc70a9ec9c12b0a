package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habrdigest/habrdigest/pkg/domain"
	"github.com/habrdigest/habrdigest/pkg/scheduler/mocks"
)

func testTopics() []*domain.Topic {
	return []*domain.Topic{
		{ID: 1, Name: "Python", Slug: "python", Active: true},
		{ID: 2, Name: "Go", Slug: "go", Active: true},
	}
}

func newIngestStore(topics []*domain.Topic) *mocks.StoreMock {
	var runID atomic.Int64
	return &mocks.StoreMock{
		GetTopicsFunc: func(_ context.Context, _ bool) ([]*domain.Topic, error) {
			return topics, nil
		},
		StartRunFunc: func(_ context.Context) (int64, error) {
			return runID.Add(1), nil
		},
		CompleteRunFunc: func(_ context.Context, _ int64, _, _ int) error { return nil },
		FailRunFunc:     func(_ context.Context, _ int64, _ string) error { return nil },
		UpsertArticleFunc: func(_ context.Context, _ *domain.Article, _ []int64) (bool, error) {
			return true, nil
		},
	}
}

func TestScheduler_IngestNow(t *testing.T) {
	store := newIngestStore(testTopics())
	scraper := &mocks.ScraperMock{
		ScrapeTopicFunc: func(_ context.Context, slug string) ([]domain.ScrapedArticle, error) {
			return []domain.ScrapedArticle{
				{SourceID: slug + "-1", Title: "Article " + slug, URL: "https://habr.com/ru/articles/1/"},
			}, nil
		},
	}

	s := NewScheduler(store, scraper, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{MaxWorkers: 2})
	require.NoError(t, s.IngestNow(context.Background()))

	// both topics scraped, articles stored, run completed with counts
	assert.Len(t, scraper.ScrapeTopicCalls(), 2)
	assert.Len(t, store.UpsertArticleCalls(), 2)
	require.Len(t, store.CompleteRunCalls(), 1)
	assert.Equal(t, 2, store.CompleteRunCalls()[0].Found)
	assert.Equal(t, 2, store.CompleteRunCalls()[0].Processed)
	assert.Empty(t, store.FailRunCalls())
}

func TestScheduler_IngestNow_TopicLinking(t *testing.T) {
	store := newIngestStore(testTopics())
	scraper := &mocks.ScraperMock{
		ScrapeTopicFunc: func(_ context.Context, slug string) ([]domain.ScrapedArticle, error) {
			if slug != "python" {
				return nil, nil
			}
			// tagged with both topics, tag case differs from the display name
			return []domain.ScrapedArticle{
				{SourceID: "p-1", Title: "Cross-topic", URL: "https://habr.com/ru/articles/7/", Tags: []string{"go", "PYTHON"}},
			}, nil
		},
	}

	s := NewScheduler(store, scraper, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{})
	require.NoError(t, s.IngestNow(context.Background()))

	require.Len(t, store.UpsertArticleCalls(), 1)
	// linked to the scraped hub plus matched tags, no duplicates
	assert.ElementsMatch(t, []int64{1, 2}, store.UpsertArticleCalls()[0].TopicIDs)
}

func TestScheduler_IngestNow_ScrapeFailureSkipsTopic(t *testing.T) {
	store := newIngestStore(testTopics())
	scraper := &mocks.ScraperMock{
		ScrapeTopicFunc: func(_ context.Context, slug string) ([]domain.ScrapedArticle, error) {
			if slug == "python" {
				return nil, fmt.Errorf("habr returned 503")
			}
			return []domain.ScrapedArticle{
				{SourceID: "g-1", Title: "Go article", URL: "https://habr.com/ru/articles/2/"},
			}, nil
		},
	}

	s := NewScheduler(store, scraper, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{})
	require.NoError(t, s.IngestNow(context.Background()))

	// the healthy topic still ingested, run completed rather than failed
	assert.Len(t, store.UpsertArticleCalls(), 1)
	require.Len(t, store.CompleteRunCalls(), 1)
	assert.Equal(t, 1, store.CompleteRunCalls()[0].Found)
	assert.Empty(t, store.FailRunCalls())
}

func TestScheduler_IngestNow_NoTopics(t *testing.T) {
	store := newIngestStore(nil)
	s := NewScheduler(store, &mocks.ScraperMock{}, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{})

	require.NoError(t, s.IngestNow(context.Background()))
	assert.Empty(t, store.StartRunCalls())
}

func TestScheduler_IngestNow_ExtractContent(t *testing.T) {
	store := newIngestStore(testTopics()[:1])
	scraper := &mocks.ScraperMock{
		ScrapeTopicFunc: func(_ context.Context, _ string) ([]domain.ScrapedArticle, error) {
			return []domain.ScrapedArticle{
				{SourceID: "p-1", Title: "Article", URL: "https://habr.com/ru/articles/9/", Content: "snippet"},
			}, nil
		},
		ExtractContentFunc: func(_ context.Context, _ string) (string, error) {
			return "full article body", nil
		},
	}

	s := NewScheduler(store, scraper, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{ExtractContent: true})
	require.NoError(t, s.IngestNow(context.Background()))

	require.Len(t, store.UpsertArticleCalls(), 1)
	assert.Equal(t, "full article body", store.UpsertArticleCalls()[0].Article.Content)
	assert.Len(t, scraper.ExtractContentCalls(), 1)
}

func TestScheduler_SummarizeNow(t *testing.T) {
	t.Run("summarizes batch and persists", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetUnprocessedArticlesFunc: func(_ context.Context, _ int) ([]*domain.Article, error) {
				return []*domain.Article{
					{ID: 1, Title: "First", Content: "body one"},
					{ID: 2, Title: "Second", Content: "body two"},
				}, nil
			},
			UpdateArticleSummaryFunc: func(_ context.Context, _ int64, _ string) error { return nil },
		}
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(_ context.Context, title, _ string) (string, error) {
				return "summary of " + title, nil
			},
		}

		s := NewScheduler(store, &mocks.ScraperMock{}, &mocks.DigesterMock{}, summarizer, Config{})
		require.NoError(t, s.SummarizeNow(context.Background()))

		require.Len(t, store.UpdateArticleSummaryCalls(), 2)
		assert.Equal(t, "summary of First", store.UpdateArticleSummaryCalls()[0].Summary)
	})

	t.Run("summarizer failure skips article", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetUnprocessedArticlesFunc: func(_ context.Context, _ int) ([]*domain.Article, error) {
				return []*domain.Article{
					{ID: 1, Title: "Bad"},
					{ID: 2, Title: "Good"},
				}, nil
			},
			UpdateArticleSummaryFunc: func(_ context.Context, _ int64, _ string) error { return nil },
		}
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(_ context.Context, title, _ string) (string, error) {
				if title == "Bad" {
					return "", fmt.Errorf("rate limited")
				}
				return "ok", nil
			},
		}

		s := NewScheduler(store, &mocks.ScraperMock{}, &mocks.DigesterMock{}, summarizer, Config{})
		require.NoError(t, s.SummarizeNow(context.Background()))

		// only the good article is persisted, the bad one stays unprocessed
		require.Len(t, store.UpdateArticleSummaryCalls(), 1)
		assert.Equal(t, int64(2), store.UpdateArticleSummaryCalls()[0].ArticleID)
	})

	t.Run("empty backlog is a no-op", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetUnprocessedArticlesFunc: func(_ context.Context, _ int) ([]*domain.Article, error) {
				return nil, nil
			},
		}
		s := NewScheduler(store, &mocks.ScraperMock{}, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{})
		require.NoError(t, s.SummarizeNow(context.Background()))
	})
}

func TestScheduler_DeliverNow(t *testing.T) {
	digester := &mocks.DigesterMock{
		RunTickFunc: func(_ context.Context) (domain.TickStats, error) {
			return domain.TickStats{Processed: 3, Delivered: 2}, nil
		},
	}
	s := NewScheduler(&mocks.StoreMock{}, &mocks.ScraperMock{}, digester, &mocks.SummarizerMock{}, Config{})

	stats, err := s.DeliverNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Delivered)
	assert.Len(t, digester.RunTickCalls(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	var ticks atomic.Int32
	store := newIngestStore(nil) // no topics, initial ingestion is a no-op
	digester := &mocks.DigesterMock{
		RunTickFunc: func(_ context.Context) (domain.TickStats, error) {
			ticks.Add(1)
			return domain.TickStats{}, nil
		},
	}

	s := NewScheduler(store, &mocks.ScraperMock{}, digester, &mocks.SummarizerMock{}, Config{
		DigestInterval:    20 * time.Millisecond,
		IngestInterval:    time.Hour,
		SummarizeInterval: time.Hour,
		CleanupInterval:   time.Hour,
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 10*time.Millisecond)
	s.Stop()

	// no further ticks after stop
	after := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestScheduler_RunCleanup(t *testing.T) {
	store := &mocks.StoreMock{
		CleanupOldArticlesFunc: func(_ context.Context, olderThan time.Time) (int64, error) {
			assert.True(t, olderThan.Before(time.Now()))
			return 3, nil
		},
		CleanupOldRunsFunc: func(_ context.Context, _ time.Time) (int64, error) { return 1, nil },
	}
	s := NewScheduler(store, &mocks.ScraperMock{}, &mocks.DigesterMock{}, &mocks.SummarizerMock{}, Config{
		ArticleRetention: 30 * 24 * time.Hour,
		RunRetention:     14 * 24 * time.Hour,
	})

	s.runCleanup(context.Background())
	assert.Len(t, store.CleanupOldArticlesCalls(), 1)
	assert.Len(t, store.CleanupOldRunsCalls(), 1)
}

func TestMatchTopics(t *testing.T) {
	topics := testTopics()
	hub := topics[0] // Python

	t.Run("hub always linked", func(t *testing.T) {
		assert.Equal(t, []int64{1}, matchTopics(hub, nil, topics))
	})

	t.Run("tags matched case-insensitively without duplicates", func(t *testing.T) {
		ids := matchTopics(hub, []string{"GO", "python", "Unknown"}, topics)
		assert.ElementsMatch(t, []int64{1, 2}, ids)
	})
}
