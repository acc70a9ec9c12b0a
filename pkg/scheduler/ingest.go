package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// ingestWorker periodically scrapes all active topics
func (s *Scheduler) ingestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.IngestInterval)
	defer ticker.Stop()

	// run immediately on start so a fresh install has content
	if err := s.IngestNow(ctx); err != nil {
		lgr.Printf("[ERROR] initial ingestion failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.IngestNow(ctx); err != nil {
				lgr.Printf("[ERROR] ingestion failed: %v", err)
			}
		}
	}
}

// IngestNow scrapes every active topic once, recording an audit run.
// Topics are fetched concurrently with bounded parallelism; a single topic
// failure is logged and skipped, only a store failure fails the run.
func (s *Scheduler) IngestNow(ctx context.Context) error {
	topics, err := s.store.GetTopics(ctx, true)
	if err != nil {
		return fmt.Errorf("get active topics: %w", err)
	}
	if len(topics) == 0 {
		lgr.Printf("[INFO] no active topics, skipping ingestion")
		return nil
	}

	runID, err := s.store.StartRun(ctx)
	if err != nil {
		return fmt.Errorf("start ingestion run: %w", err)
	}

	lgr.Printf("[INFO] ingestion run %d started for %d topics", runID, len(topics))

	var mu sync.Mutex
	var found, created int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)

	for _, topic := range topics {
		g.Go(func() error {
			articles, err := s.scraper.ScrapeTopic(gctx, topic.Slug)
			if err != nil {
				// scraper failures are transient, treat as "no new articles"
				lgr.Printf("[WARN] failed to scrape topic %q: %v", topic.Slug, err)
				return nil
			}

			n := s.storeArticles(gctx, topic, articles, topics)

			mu.Lock()
			found += len(articles)
			created += n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if failErr := s.store.FailRun(ctx, runID, err.Error()); failErr != nil {
			lgr.Printf("[ERROR] failed to record run failure: %v", failErr)
		}
		return fmt.Errorf("ingestion run %d: %w", runID, err)
	}

	if err := s.store.CompleteRun(ctx, runID, found, created); err != nil {
		return fmt.Errorf("complete ingestion run %d: %w", runID, err)
	}

	lgr.Printf("[INFO] ingestion run %d completed: %d found, %d new", runID, found, created)
	return nil
}

// storeArticles persists scraped articles and returns the number created
func (s *Scheduler) storeArticles(ctx context.Context, hub *domain.Topic, scraped []domain.ScrapedArticle, topics []*domain.Topic) int {
	created := 0
	for _, raw := range scraped {
		article := &domain.Article{
			SourceID:    raw.SourceID,
			Title:       raw.Title,
			URL:         raw.URL,
			Author:      raw.Author,
			PublishedAt: raw.PublishedAt,
			Content:     raw.Content,
			Topics:      raw.Tags,
		}

		if s.cfg.ExtractContent {
			if full, err := s.scraper.ExtractContent(ctx, raw.URL); err == nil && full != "" {
				article.Content = full
			} else if err != nil {
				lgr.Printf("[DEBUG] full-text extraction failed for %s: %v", raw.URL, err)
			}
		}

		topicIDs := matchTopics(hub, raw.Tags, topics)

		s.dbMutex.Lock()
		isNew, err := s.store.UpsertArticle(ctx, article, topicIDs)
		s.dbMutex.Unlock()
		if err != nil {
			lgr.Printf("[ERROR] failed to store article %s: %v", raw.SourceID, err)
			continue
		}
		if isNew {
			created++
		}
	}
	return created
}
