package domain

import "time"

// Subscriber represents a chat user receiving digests
type Subscriber struct {
	ID        int64
	ChatID    int64 // external chat identity (telegram user id)
	Username  string
	FirstName string
	LastName  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription binds a subscriber to a topic with an individual delivery
// frequency. LastDeliveredAt is nil until the first non-empty digest goes out.
type Subscription struct {
	ID              int64
	SubscriberID    int64
	TopicID         int64
	FrequencyHours  int
	Active          bool
	CreatedAt       time.Time
	LastDeliveredAt *time.Time
}

// TickStats aggregates the outcome of one delivery sweep
type TickStats struct {
	Processed int `json:"processed"` // subscriptions evaluated
	Delivered int `json:"delivered"` // digests actually sent
	Errors    int `json:"errors"`
}

// Stats is a snapshot of store counters for the status API
type Stats struct {
	Subscribers         int64 `json:"subscribers"`
	ActiveSubscribers   int64 `json:"active_subscribers"`
	Topics              int64 `json:"topics"`
	ActiveTopics        int64 `json:"active_topics"`
	Articles            int64 `json:"articles"`
	ProcessedArticles   int64 `json:"processed_articles"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	DeliveryReceipts    int64 `json:"delivery_receipts"`
}
