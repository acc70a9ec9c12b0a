package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// scrapeHubFeed reads the hub's RSS feed and converts entries to articles.
// Feed descriptions carry markup, stripped down to plain text before storage.
func (s *Scraper) scrapeHubFeed(ctx context.Context, slug string) ([]domain.ScrapedArticle, error) {
	feedURL := fmt.Sprintf("%s/ru/rss/hub/%s/all/?fl=ru", strings.TrimRight(s.cfg.BaseURL, "/"), slug)

	body, err := s.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch hub feed %s: %w", slug, err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse hub feed %s: %w", slug, err)
	}

	sanitizer := bluemonday.StrictPolicy()

	articles := make([]domain.ScrapedArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) >= s.cfg.MaxArticles {
			break
		}

		sourceID := SourceIDFromURL(item.Link)
		if sourceID == "" {
			continue // not an article link
		}

		article := domain.ScrapedArticle{
			SourceID: sourceID,
			Title:    strings.TrimSpace(item.Title),
			URL:      item.Link,
			Content:  strings.TrimSpace(sanitizer.Sanitize(item.Description)),
		}

		if item.Author != nil {
			article.Author = item.Author.Name
		}
		if article.Author == "" {
			if creator, ok := item.Custom["dc:creator"]; ok {
				article.Author = creator
			}
		}

		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			article.PublishedAt = &t
		} else if item.UpdatedParsed != nil {
			t := *item.UpdatedParsed
			article.PublishedAt = &t
		}

		for _, cat := range item.Categories {
			if tag := strings.TrimSpace(cat); tag != "" {
				article.Tags = append(article.Tags, tag)
			}
		}

		articles = append(articles, article)
	}

	return articles, nil
}
