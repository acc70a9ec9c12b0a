package domain

import "time"

// Article represents an ingested article from the source site
type Article struct {
	ID          int64
	SourceID    string // site-wide unique identifier extracted from the article URL
	Title       string
	URL         string
	Author      string
	PublishedAt *time.Time
	Content     string
	Summary     string
	Topics      []string // topic tags as scraped from the page
	Processed   bool     // set once a summary exists
	CreatedAt   time.Time
}

// ScrapedArticle is a raw article record as returned by the scraper,
// before it is persisted and linked to topics
type ScrapedArticle struct {
	SourceID    string
	Title       string
	URL         string
	Author      string
	PublishedAt *time.Time
	Content     string
	Tags        []string
}

// DeliveryReceipt records that an article was sent to a subscriber.
// Receipts form an append-only deduplication ledger: once a receipt exists
// the article is never selected for that subscriber again.
type DeliveryReceipt struct {
	ID           int64
	SubscriberID int64
	ArticleID    int64
	SentAt       time.Time
}

// IngestionRun is an audit record of one scraping pass
type IngestionRun struct {
	ID                int64
	StartedAt         time.Time
	FinishedAt        *time.Time
	ArticlesFound     int
	ArticlesProcessed int
	Status            string // running, completed, failed
	Error             string
}

// ingestion run statuses
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)
