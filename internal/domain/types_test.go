package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVenueTier(t *testing.T) {
	p := func(n int) *int { return &n }

	tests := []struct {
		name  string
		venue Venue
		want  Tier
	}{
		{
			name:  "no priority is unranked",
			venue: Venue{},
			want:  TierUnranked,
		},
		{
			name:  "priority 1 from homepage slot is featured",
			venue: Venue{Priority: p(1), PrioritySource: PrioritySourceHomepage},
			want:  TierFeatured,
		},
		{
			name:  "priority 1 from manual curation is tier 1",
			venue: Venue{Priority: p(1), PrioritySource: "manual"},
			want:  TierPriority1,
		},
		{
			name:  "priority 2 ignores the homepage source",
			venue: Venue{Priority: p(2), PrioritySource: PrioritySourceHomepage},
			want:  TierPriority2,
		},
		{
			name:  "priority 3",
			venue: Venue{Priority: p(3)},
			want:  TierPriority3,
		},
		{
			name:  "out of range priority is unranked",
			venue: Venue{Priority: p(7)},
			want:  TierUnranked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.venue.Tier())
		})
	}
}
