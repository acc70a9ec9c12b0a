package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// scrapeHubPage parses the hub page markup directly. Used when the RSS feed
// is unavailable or trimmed, the page carries the same snippets.
func (s *Scraper) scrapeHubPage(ctx context.Context, slug string) ([]domain.ScrapedArticle, error) {
	pageURL := fmt.Sprintf("%s/ru/hub/%s/", strings.TrimRight(s.cfg.BaseURL, "/"), slug)

	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch hub page %s: %w", slug, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse hub page %s: %w", slug, err)
	}

	var articles []domain.ScrapedArticle
	doc.Find("article.tm-article-snippet").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(articles) >= s.cfg.MaxArticles {
			return false
		}
		if article, ok := s.parseSnippet(sel); ok {
			articles = append(articles, article)
		}
		return true
	})

	return articles, nil
}

// parseSnippet extracts one article from a listing snippet element
func (s *Scraper) parseSnippet(sel *goquery.Selection) (domain.ScrapedArticle, bool) {
	titleLink := sel.Find("h2.tm-article-snippet__title a").First()
	title := strings.TrimSpace(titleLink.Text())
	href, _ := titleLink.Attr("href")
	if title == "" || href == "" {
		return domain.ScrapedArticle{}, false
	}

	articleURL := s.resolveURL(href)
	sourceID := SourceIDFromURL(articleURL)
	if sourceID == "" {
		return domain.ScrapedArticle{}, false
	}

	article := domain.ScrapedArticle{
		SourceID: sourceID,
		Title:    title,
		URL:      articleURL,
		Author:   strings.TrimSpace(sel.Find("a.tm-user-info__username").First().Text()),
		Content:  strings.TrimSpace(sel.Find("div.tm-article-snippet__content").First().Text()),
	}

	if datetime, ok := sel.Find("time").First().Attr("datetime"); ok {
		if published, err := time.Parse(time.RFC3339, datetime); err == nil {
			article.PublishedAt = &published
		}
	}

	sel.Find("a.tm-article-snippet__hubs-item-link").Each(func(_ int, hub *goquery.Selection) {
		if tag := strings.TrimSpace(hub.Text()); tag != "" {
			article.Tags = append(article.Tags, tag)
		}
	})

	return article, true
}
