package digest

import (
	"time"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// IsDue reports whether a subscription is due for another digest at the
// given instant. Pure function, the clock is passed in.
//
// Rules: inactive subscriptions are never due; a subscription that was
// never delivered is always due; otherwise the configured interval must
// have fully elapsed, with the exact boundary counting as due.
func IsDue(sub *domain.Subscription, now time.Time) bool {
	if !sub.Active {
		return false
	}
	if sub.LastDeliveredAt == nil {
		return true
	}
	interval := time.Duration(sub.FrequencyHours) * time.Hour
	return now.Sub(*sub.LastDeliveredAt) >= interval
}
