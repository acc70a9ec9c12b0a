package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// ArticleRepository handles article-related database operations,
// including the unseen-article selection used for digest delivery
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64      `db:"id"`
	SourceID    string     `db:"source_id"`
	Title       string     `db:"title"`
	URL         string     `db:"url"`
	Author      string     `db:"author"`
	PublishedAt *time.Time `db:"published_at"`
	Content     string     `db:"content"`
	Summary     string     `db:"summary"`
	Topics      topicsSQL  `db:"topics"`
	Processed   bool       `db:"processed"`
	CreatedAt   time.Time  `db:"created_at"`
}

// topicsSQL is a JSON array of topic tag strings for SQL operations
type topicsSQL []string

// Value implements driver.Valuer for database storage
func (t topicsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *topicsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = topicsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), t)
	}

	return json.Unmarshal(data, t)
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// UpsertArticle stores an article unless one with the same source identifier
// already exists, in which case the existing row is reused. Topic links are
// merged either way. Returns true if a new article was created.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article, topicIDs []int64) (bool, error) {
	created := false

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existingID int64
	err = tx.GetContext(ctx, &existingID, "SELECT id FROM articles WHERE source_id = ?", article.SourceID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		sqlArticle := &articleSQL{
			SourceID:    article.SourceID,
			Title:       article.Title,
			URL:         article.URL,
			Author:      article.Author,
			PublishedAt: article.PublishedAt,
			Content:     article.Content,
			Topics:      topicsSQL(article.Topics),
		}
		query := `
			INSERT INTO articles (source_id, title, url, author, published_at, content, topics)
			VALUES (:source_id, :title, :url, :author, :published_at, :content, :topics)
		`
		result, err := tx.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			return false, fmt.Errorf("create article: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("get insert id: %w", err)
		}
		article.ID = id
		created = true
	case err != nil:
		return false, fmt.Errorf("check article exists: %w", err)
	default:
		article.ID = existingID
	}

	for _, topicID := range topicIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO article_topics (article_id, topic_id) VALUES (?, ?)",
			article.ID, topicID); err != nil {
			return false, fmt.Errorf("link article topic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit article upsert: %w", err)
	}
	return created, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetArticleBySourceID retrieves an article by its source-site identifier
func (r *ArticleRepository) GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE source_id = ?", sourceID)
	if err != nil {
		return nil, fmt.Errorf("get article by source id: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetUnseenArticles returns articles linked to the topic that have no
// delivery receipt for the subscriber, newest-created first. An empty
// result is normal and not an error.
func (r *ArticleRepository) GetUnseenArticles(ctx context.Context, subscriberID, topicID int64, limit int) ([]*domain.Article, error) {
	query := `
		SELECT a.* FROM articles a
		JOIN article_topics at ON at.article_id = a.id
		WHERE at.topic_id = ?
		AND NOT EXISTS (
			SELECT 1 FROM delivery_receipts dr
			WHERE dr.article_id = a.id AND dr.subscriber_id = ?
		)
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles, query, topicID, subscriberID, limit)
	if err != nil {
		return nil, fmt.Errorf("get unseen articles: %w", err)
	}

	articles := make([]*domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = r.toDomainArticle(&a)
	}
	return articles, nil
}

// GetUnprocessedArticles retrieves articles without a summary,
// newest-created first
func (r *ArticleRepository) GetUnprocessedArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE processed = 0
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get unprocessed articles: %w", err)
	}

	articles := make([]*domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = r.toDomainArticle(&a)
	}
	return articles, nil
}

// GetArticleSummary returns the cached summary for an article, empty if none
func (r *ArticleRepository) GetArticleSummary(ctx context.Context, articleID int64) (string, error) {
	var summary string
	err := r.db.GetContext(ctx, &summary, "SELECT summary FROM articles WHERE id = ?", articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get article summary: %w", err)
	}
	return summary, nil
}

// UpdateArticleSummary persists a generated summary and marks the article
// processed. Retried on SQLite lock errors since summarization runs
// concurrently with ingestion.
func (r *ArticleRepository) UpdateArticleSummary(ctx context.Context, articleID int64, summary string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE articles SET summary = ?, processed = 1 WHERE id = ?", summary, articleID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update article summary: %w", err)}
		}
		return nil
	})
}

// CleanupOldArticles deletes articles created before the cutoff that have at
// least one delivery receipt. Articles never sent to anyone are retained.
func (r *ArticleRepository) CleanupOldArticles(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		DELETE FROM articles
		WHERE created_at < ?
		AND EXISTS (SELECT 1 FROM delivery_receipts dr WHERE dr.article_id = articles.id)
	`
	result, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("cleanup old articles: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(sqlArticle *articleSQL) *domain.Article {
	return &domain.Article{
		ID:          sqlArticle.ID,
		SourceID:    sqlArticle.SourceID,
		Title:       sqlArticle.Title,
		URL:         sqlArticle.URL,
		Author:      sqlArticle.Author,
		PublishedAt: sqlArticle.PublishedAt,
		Content:     sqlArticle.Content,
		Summary:     sqlArticle.Summary,
		Topics:      sqlArticle.Topics,
		Processed:   sqlArticle.Processed,
		CreatedAt:   sqlArticle.CreatedAt,
	}
}
