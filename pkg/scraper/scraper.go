package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/habrdigest/habrdigest/pkg/config"
	"github.com/habrdigest/habrdigest/pkg/domain"
)

// Scraper fetches article listings from Habr hub pages. Two modes are
// supported: rss reads the hub RSS feed, html parses the hub page markup.
type Scraper struct {
	cfg    config.ScraperConfig
	client *http.Client
}

// New creates a scraper for the configured mode
func New(cfg config.ScraperConfig) *Scraper {
	return &Scraper{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ScrapeTopic returns up to MaxArticles articles for the hub identified by slug
func (s *Scraper) ScrapeTopic(ctx context.Context, slug string) ([]domain.ScrapedArticle, error) {
	switch s.cfg.Mode {
	case "html":
		return s.scrapeHubPage(ctx, slug)
	default:
		return s.scrapeHubFeed(ctx, slug)
	}
}

// fetch retrieves content from a URL with browser-like headers
func (s *Scraper) fetch(ctx context.Context, urlStr string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.cfg.UserAgent)
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// resolveURL makes article links absolute against the configured base URL
func (s *Scraper) resolveURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// SourceIDFromURL extracts the site-wide numeric article identifier from a
// Habr article URL, the last numeric path segment. Returns empty string when
// the URL does not point to an article.
func SourceIDFromURL(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && isDigits(parts[i]) {
			return parts[i]
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
