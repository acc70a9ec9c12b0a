package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// RunTick sweeps all subscribers with active subscriptions and delivers due
// digests. Returns per-tick counters; individual subscription failures are
// counted, only a store failure aborts the sweep. At most one tick runs at
// a time, a concurrent call gets ErrTickInProgress.
func (d *Digester) RunTick(ctx context.Context) (domain.TickStats, error) {
	if !d.tickMu.TryLock() {
		return domain.TickStats{}, ErrTickInProgress
	}
	defer d.tickMu.Unlock()

	var stats domain.TickStats

	subscribers, err := d.store.GetSubscribersWithSubscriptions(ctx)
	if err != nil {
		return stats, fmt.Errorf("get subscribers: %w", err)
	}

	for _, subscriber := range subscribers {
		if ctx.Err() != nil {
			// shutdown mid-tick: already delivered subscriptions keep
			// their marks, the rest are picked up next tick
			lgr.Printf("[INFO] tick cancelled after %d subscriptions", stats.Processed)
			return stats, ctx.Err()
		}

		subscriptions, err := d.store.GetActiveSubscriptions(ctx, subscriber.ID)
		if err != nil {
			return stats, fmt.Errorf("get subscriptions for subscriber %d: %w", subscriber.ID, err)
		}

		for _, sub := range subscriptions {
			stats.Processed++
			switch d.processSubscription(ctx, subscriber, sub) {
			case outcomeDelivered:
				stats.Delivered++
			case outcomeFailed:
				stats.Errors++
			}
		}
	}

	lgr.Printf("[INFO] delivery tick completed: processed %d, delivered %d, errors %d",
		stats.Processed, stats.Delivered, stats.Errors)
	return stats, nil
}

// SendDigest delivers one digest for a (subscriber, topic) pair immediately,
// bypassing the due check. Used for manual triggering; deduplication and the
// delivery mark still apply.
func (d *Digester) SendDigest(ctx context.Context, subscriberID, topicID int64) error {
	subscriber, err := d.store.GetSubscriber(ctx, subscriberID)
	if err != nil {
		return fmt.Errorf("get subscriber %d: %w", subscriberID, err)
	}

	sub, err := d.store.GetSubscriptionByTopic(ctx, subscriberID, topicID)
	if err != nil {
		return fmt.Errorf("get subscription for subscriber %d topic %d: %w", subscriberID, topicID, err)
	}

	switch d.deliver(ctx, subscriber, sub) {
	case outcomeFailed:
		return fmt.Errorf("digest delivery failed for subscriber %d topic %d", subscriberID, topicID)
	case outcomeNoArticles:
		lgr.Printf("[INFO] no new articles for subscriber %d topic %d", subscriberID, topicID)
	}
	return nil
}

// subscription processing outcomes
type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeNoArticles
	outcomeDelivered
	outcomeFailed
)

// processSubscription applies the due check and delivers when due
func (d *Digester) processSubscription(ctx context.Context, subscriber *domain.Subscriber, sub *domain.Subscription) outcome {
	if !sub.Active {
		return outcomeSkipped
	}
	if !IsDue(sub, d.params.NowFunc()) {
		return outcomeSkipped
	}
	return d.deliver(ctx, subscriber, sub)
}

// deliver selects unseen articles, gates summaries, dispatches one message
// and marks delivery. No articles means a clean no-op: the timestamp is not
// advanced so the subscription is re-checked next tick.
func (d *Digester) deliver(ctx context.Context, subscriber *domain.Subscriber, sub *domain.Subscription) outcome {
	topic, err := d.store.GetTopic(ctx, sub.TopicID)
	if err != nil {
		lgr.Printf("[WARN] topic %d not found for subscription %d: %v", sub.TopicID, sub.ID, err)
		return outcomeFailed
	}

	articles, err := d.store.GetUnseenArticles(ctx, sub.SubscriberID, sub.TopicID, d.params.ArticlesPerDigest)
	if err != nil {
		lgr.Printf("[WARN] failed to select articles for subscription %d: %v", sub.ID, err)
		return outcomeFailed
	}
	if len(articles) == 0 {
		return outcomeNoArticles
	}

	summaries := make([]string, len(articles))
	for i, article := range articles {
		summaries[i] = d.EnsureSummary(ctx, article)
	}

	message := formatDigest(topic.Name, articles, summaries)

	// dispatch first, then mark: a failed or ambiguous send leaves no marks,
	// the worst case is a duplicate next tick, never a lost delivery record
	if err := d.messenger.Send(ctx, subscriber.ChatID, message); err != nil {
		lgr.Printf("[WARN] dispatch failed for subscriber %d topic %q: %v", subscriber.ID, topic.Name, err)
		return outcomeFailed
	}

	articleIDs := make([]int64, len(articles))
	for i, article := range articles {
		articleIDs[i] = article.ID
	}
	now := d.params.NowFunc()
	if err := d.store.MarkDelivered(ctx, sub.ID, sub.SubscriberID, articleIDs, now); err != nil {
		// message is out but the mark failed, this risks a duplicate send
		lgr.Printf("[ERROR] failed to mark delivery for subscription %d after dispatch: %v", sub.ID, err)
		return outcomeFailed
	}

	lgr.Printf("[INFO] digest delivered to subscriber %d topic %q, %d articles", subscriber.ID, topic.Name, len(articles))
	return outcomeDelivered
}

// formatDigest renders one digest message for a topic
func formatDigest(topicName string, articles []*domain.Article, summaries []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📰 Дайджест по теме: %s\n\n", topicName)
	for i, article := range articles {
		fmt.Fprintf(&b, "📄 %d. %s\n", i+1, article.Title)
		if article.Author != "" {
			fmt.Fprintf(&b, "👤 Автор: %s\n", article.Author)
		}
		fmt.Fprintf(&b, "📝 %s\n", summaries[i])
		fmt.Fprintf(&b, "🔗 %s\n\n", article.URL)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// SendWelcome sends the greeting message to a new subscriber, best-effort
func (d *Digester) SendWelcome(ctx context.Context, chatID int64) {
	welcome := `🎉 Добро пожаловать в ХабрДайджест!

Теперь вы будете получать интересные IT-статьи с Хабра с кратким резюме.

📋 Что дальше:
• Выберите интересующие темы
• Настройте частоту получения дайджестов
• Получайте статьи по расписанию`

	if err := d.messenger.Send(ctx, chatID, welcome); err != nil {
		lgr.Printf("[WARN] failed to send welcome to chat %d: %v", chatID, err)
	}
}

// NotifyError sends a best-effort error notification to a subscriber
func (d *Digester) NotifyError(ctx context.Context, chatID int64, reason string) {
	text := fmt.Sprintf("❌ Произошла ошибка при обработке вашего запроса:\n\n%s\n\nПопробуйте позже.", reason)
	if err := d.messenger.Send(ctx, chatID, text); err != nil {
		lgr.Printf("[WARN] failed to send error notification to chat %d: %v", chatID, err)
	}
}
