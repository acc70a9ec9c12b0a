package domain

import (
	"strings"
	"time"
)

// Topic represents a subscribable topic, mirroring a hub on the source site
type Topic struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Active      bool
	CreatedAt   time.Time
}

// Slugify derives a topic slug from its display name: lowercase, spaces
// replaced with hyphens, ё/й transliterated, everything outside ASCII
// [a-z0-9-] stripped, edge hyphens trimmed. The slug is what gets
// substituted into hub URLs; an empty result means the name has no usable
// ASCII content and cannot map to a hub.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "ё", "е")
	s = strings.ReplaceAll(s, "й", "и")
	s = strings.ReplaceAll(s, " ", "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
