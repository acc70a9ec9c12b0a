package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	tests := []struct {
		name string
		sub  domain.Subscription
		want bool
	}{
		{
			name: "inactive subscription never due",
			sub:  domain.Subscription{Active: false, FrequencyHours: 24},
			want: false,
		},
		{
			name: "inactive with nil last delivered still not due",
			sub:  domain.Subscription{Active: false, FrequencyHours: 24, LastDeliveredAt: nil},
			want: false,
		},
		{
			name: "never delivered is always due",
			sub:  domain.Subscription{Active: true, FrequencyHours: 24, LastDeliveredAt: nil},
			want: true,
		},
		{
			name: "exactly at the boundary is due",
			sub:  domain.Subscription{Active: true, FrequencyHours: 24, LastDeliveredAt: past(24 * time.Hour)},
			want: true,
		},
		{
			name: "one second before the boundary is not due",
			sub:  domain.Subscription{Active: true, FrequencyHours: 24, LastDeliveredAt: past(24*time.Hour - time.Second)},
			want: false,
		},
		{
			name: "well past the boundary is due",
			sub:  domain.Subscription{Active: true, FrequencyHours: 6, LastDeliveredAt: past(48 * time.Hour)},
			want: true,
		},
		{
			name: "just delivered is not due",
			sub:  domain.Subscription{Active: true, FrequencyHours: 6, LastDeliveredAt: past(0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := tt.sub
			assert.Equal(t, tt.want, IsDue(&sub, now))
		})
	}
}
