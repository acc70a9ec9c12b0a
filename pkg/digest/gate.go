package digest

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// EnsureSummary returns display text for the article, generating and caching
// a summary on first use. A summarizer failure degrades to a fallback built
// from the title so delivery is never blocked; the article stays unprocessed
// and will be retried by backlog summarization.
func (d *Digester) EnsureSummary(ctx context.Context, article *domain.Article) string {
	if article.Summary != "" {
		return article.Summary
	}

	// re-check the cache right before the external call, a concurrent
	// backlog pass may have summarized this article already
	if cached, err := d.store.GetArticleSummary(ctx, article.ID); err == nil && cached != "" {
		article.Summary = cached
		return cached
	}

	summary, err := d.summarizer.Summarize(ctx, article.Title, article.Content)
	if err != nil {
		lgr.Printf("[WARN] summarization failed for article %d (%s): %v", article.ID, article.Title, err)
		return fmt.Sprintf("Краткое резюме: %s", article.Title)
	}

	if err := d.store.UpdateArticleSummary(ctx, article.ID, summary); err != nil {
		// summary is still usable for this digest even if caching failed
		lgr.Printf("[WARN] failed to cache summary for article %d: %v", article.ID, err)
	}

	article.Summary = summary
	return summary
}
