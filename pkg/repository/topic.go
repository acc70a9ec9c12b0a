package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// TopicRepository handles topic-related database operations
type TopicRepository struct {
	db *sqlx.DB
}

// topicSQL represents a topic for SQL operations
type topicSQL struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(database *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: database}
}

// CreateTopic inserts a new topic. Name and slug uniqueness is enforced by
// the storage layer; a conflict surfaces as ErrDuplicateTopic.
func (r *TopicRepository) CreateTopic(ctx context.Context, topic *domain.Topic) error {
	if topic.Slug == "" {
		topic.Slug = domain.Slugify(topic.Name)
	}
	// re-slugify to catch explicitly supplied slugs with no ASCII alphanumerics
	if domain.Slugify(topic.Slug) == "" {
		return fmt.Errorf("topic name %q produces no usable slug", topic.Name)
	}

	query := `
		INSERT INTO topics (name, slug, description, active)
		VALUES (?, ?, ?, 1)
	`
	result, err := r.db.ExecContext(ctx, query, topic.Name, topic.Slug, topic.Description)
	if err != nil {
		if isUniqueError(err) {
			return ErrDuplicateTopic
		}
		return fmt.Errorf("create topic: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	topic.ID = id
	topic.Active = true
	return nil
}

// EnsureTopic creates a topic if no topic with the same slug exists,
// returning the stored topic either way. Used for default topic seeding.
func (r *TopicRepository) EnsureTopic(ctx context.Context, name, description string) (*domain.Topic, error) {
	slug := domain.Slugify(name)
	existing, err := r.GetTopicBySlug(ctx, slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrTopicNotFound) {
		return nil, err
	}

	topic := &domain.Topic{Name: name, Slug: slug, Description: description}
	if err := r.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// GetTopic retrieves a topic by ID
func (r *TopicRepository) GetTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	var sqlTopic topicSQL
	err := r.db.GetContext(ctx, &sqlTopic, "SELECT * FROM topics WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTopicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return r.toDomainTopic(&sqlTopic), nil
}

// GetTopicBySlug retrieves a topic by slug
func (r *TopicRepository) GetTopicBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	var sqlTopic topicSQL
	err := r.db.GetContext(ctx, &sqlTopic, "SELECT * FROM topics WHERE slug = ?", slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTopicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get topic by slug: %w", err)
	}
	return r.toDomainTopic(&sqlTopic), nil
}

// GetTopics retrieves all topics, optionally active only
func (r *TopicRepository) GetTopics(ctx context.Context, activeOnly bool) ([]*domain.Topic, error) {
	query := "SELECT * FROM topics ORDER BY name"
	if activeOnly {
		query = "SELECT * FROM topics WHERE active = 1 ORDER BY name"
	}

	var sqlTopics []topicSQL
	if err := r.db.SelectContext(ctx, &sqlTopics, query); err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}

	topics := make([]*domain.Topic, len(sqlTopics))
	for i, t := range sqlTopics {
		topics[i] = r.toDomainTopic(&t)
	}
	return topics, nil
}

// UpdateTopicStatus sets the active flag on a topic
func (r *TopicRepository) UpdateTopicStatus(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE topics SET active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("update topic status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTopicNotFound
	}
	return nil
}

// toDomainTopic converts topicSQL to domain.Topic
func (r *TopicRepository) toDomainTopic(sqlTopic *topicSQL) *domain.Topic {
	return &domain.Topic{
		ID:          sqlTopic.ID,
		Name:        sqlTopic.Name,
		Slug:        sqlTopic.Slug,
		Description: sqlTopic.Description,
		Active:      sqlTopic.Active,
		CreatedAt:   sqlTopic.CreatedAt,
	}
}
