package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
)

// summarizeWorker periodically drains the summarization backlog so digests
// mostly hit cached summaries instead of calling the LLM inline
func (s *Scheduler) summarizeWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.SummarizeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SummarizeNow(ctx); err != nil {
				lgr.Printf("[ERROR] backlog summarization failed: %v", err)
			}
		}
	}
}

// SummarizeNow summarizes one batch of unprocessed articles sequentially.
// Per-article failures are logged and skipped, the article stays unprocessed
// and is retried next pass.
func (s *Scheduler) SummarizeNow(ctx context.Context) error {
	articles, err := s.store.GetUnprocessedArticles(ctx, s.cfg.SummarizeBatch)
	if err != nil {
		return fmt.Errorf("get unprocessed articles: %w", err)
	}
	if len(articles) == 0 {
		return nil
	}

	lgr.Printf("[INFO] summarizing %d backlog articles", len(articles))

	done := 0
	for _, article := range articles {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		summary, err := s.summarizer.Summarize(ctx, article.Title, article.Content)
		if err != nil {
			lgr.Printf("[WARN] backlog summarization failed for article %d (%s): %v", article.ID, article.Title, err)
			continue
		}

		s.dbMutex.Lock()
		err = s.store.UpdateArticleSummary(ctx, article.ID, summary)
		s.dbMutex.Unlock()
		if err != nil {
			lgr.Printf("[ERROR] failed to store summary for article %d: %v", article.ID, err)
			continue
		}
		done++
	}

	lgr.Printf("[INFO] backlog summarization completed: %d of %d", done, len(articles))
	return nil
}
