// Package scheduler runs the periodic background workers: article ingestion,
// backlog summarization, digest delivery, and retention cleanup. The three
// pipelines run on independent intervals and never block each other.
package scheduler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// Store interface for scheduler operations
type Store interface {
	GetTopics(ctx context.Context, activeOnly bool) ([]*domain.Topic, error)
	UpsertArticle(ctx context.Context, article *domain.Article, topicIDs []int64) (bool, error)
	GetUnprocessedArticles(ctx context.Context, limit int) ([]*domain.Article, error)
	UpdateArticleSummary(ctx context.Context, articleID int64, summary string) error
	CleanupOldArticles(ctx context.Context, olderThan time.Time) (int64, error)
	CleanupOldRuns(ctx context.Context, olderThan time.Time) (int64, error)
	StartRun(ctx context.Context) (int64, error)
	CompleteRun(ctx context.Context, id int64, found, processed int) error
	FailRun(ctx context.Context, id int64, errMsg string) error
}

// Scraper interface for fetching article listings
type Scraper interface {
	ScrapeTopic(ctx context.Context, slug string) ([]domain.ScrapedArticle, error)
	ExtractContent(ctx context.Context, url string) (string, error)
}

// Digester interface for delivery ticks
type Digester interface {
	RunTick(ctx context.Context) (domain.TickStats, error)
}

// Summarizer interface for backlog summarization
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// Config holds scheduler configuration
type Config struct {
	DigestInterval    time.Duration
	IngestInterval    time.Duration
	SummarizeInterval time.Duration
	CleanupInterval   time.Duration
	MaxWorkers        int
	ArticleRetention  time.Duration
	RunRetention      time.Duration
	SummarizeBatch    int
	ExtractContent    bool
}

// Scheduler manages the periodic workers
type Scheduler struct {
	store      Store
	scraper    Scraper
	digester   Digester
	summarizer Summarizer
	cfg        Config

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	dbMutex sync.Mutex // serialize database writes during ingestion
}

// NewScheduler creates a new scheduler instance
func NewScheduler(store Store, scraper Scraper, digester Digester, summarizer Summarizer, cfg Config) *Scheduler {
	if cfg.DigestInterval == 0 {
		cfg.DigestInterval = time.Hour
	}
	if cfg.IngestInterval == 0 {
		cfg.IngestInterval = 6 * time.Hour
	}
	if cfg.SummarizeInterval == 0 {
		cfg.SummarizeInterval = 30 * time.Minute
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.ArticleRetention == 0 {
		cfg.ArticleRetention = 30 * 24 * time.Hour
	}
	if cfg.RunRetention == 0 {
		cfg.RunRetention = 14 * 24 * time.Hour
	}
	if cfg.SummarizeBatch == 0 {
		cfg.SummarizeBatch = 20
	}

	return &Scheduler{
		store:      store,
		scraper:    scraper,
		digester:   digester,
		summarizer: summarizer,
		cfg:        cfg,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.ingestWorker(ctx)

	s.wg.Add(1)
	go s.digestWorker(ctx)

	if s.summarizer != nil {
		s.wg.Add(1)
		go s.summarizeWorker(ctx)
	}

	s.wg.Add(1)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started: ingest %v, digest %v, summarize %v, cleanup %v",
		s.cfg.IngestInterval, s.cfg.DigestInterval, s.cfg.SummarizeInterval, s.cfg.CleanupInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// digestWorker runs delivery ticks on the digest interval
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.DigestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runDeliveryTick(ctx)
		}
	}
}

// runDeliveryTick executes one orchestrator tick
func (s *Scheduler) runDeliveryTick(ctx context.Context) {
	stats, err := s.digester.RunTick(ctx)
	if err != nil {
		lgr.Printf("[ERROR] delivery tick failed: %v", err)
		return
	}
	if stats.Processed > 0 {
		lgr.Printf("[DEBUG] delivery tick: %+v", stats)
	}
}

// DeliverNow triggers a delivery tick immediately, used for manual runs
func (s *Scheduler) DeliverNow(ctx context.Context) (domain.TickStats, error) {
	return s.digester.RunTick(ctx)
}

// cleanupWorker periodically applies the retention policy
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCleanup(ctx)
		}
	}
}

// runCleanup purges delivered articles and old run records past retention
func (s *Scheduler) runCleanup(ctx context.Context) {
	now := time.Now()

	articles, err := s.store.CleanupOldArticles(ctx, now.Add(-s.cfg.ArticleRetention))
	if err != nil {
		lgr.Printf("[ERROR] article cleanup failed: %v", err)
	} else if articles > 0 {
		lgr.Printf("[INFO] cleanup removed %d delivered articles", articles)
	}

	runs, err := s.store.CleanupOldRuns(ctx, now.Add(-s.cfg.RunRetention))
	if err != nil {
		lgr.Printf("[ERROR] ingestion run cleanup failed: %v", err)
	} else if runs > 0 {
		lgr.Printf("[INFO] cleanup removed %d ingestion runs", runs)
	}
}

// matchTopics maps an article's hub and tags to topic IDs. The hub the
// article was scraped from always links; tag names link case-insensitively.
func matchTopics(hub *domain.Topic, tags []string, topics []*domain.Topic) []int64 {
	ids := []int64{hub.ID}
	seen := map[int64]bool{hub.ID: true}

	byName := make(map[string]*domain.Topic, len(topics))
	for _, t := range topics {
		byName[strings.ToLower(t.Name)] = t
	}

	for _, tag := range tags {
		if t, ok := byName[strings.ToLower(tag)]; ok && !seen[t.ID] {
			ids = append(ids, t.ID)
			seen[t.ID] = true
		}
	}
	return ids
}
