package domain

import (
	"time"

	"github.com/google/uuid"
)

type VenueStatus string

const (
	VenueDraft     VenueStatus = "draft"
	VenuePublished VenueStatus = "published"
	VenueActive    VenueStatus = "active"
	VenueHidden    VenueStatus = "hidden"
)

// PublicStatuses is the status set visible to unauthenticated callers.
func PublicStatuses() []VenueStatus {
	return []VenueStatus{VenuePublished}
}

// PrioritySourceHomepage marks priority that comes from a manually
// curated homepage slot rather than an organic tier assignment.
const PrioritySourceHomepage = "homepage"

// Tier is one of the five precedence groups that partition a venue set.
// Lower values always precede higher ones in listing output.
type Tier int

const (
	TierFeatured Tier = iota
	TierPriority1
	TierPriority2
	TierPriority3
	TierUnranked
)

type HomepageSlot struct {
	Position int
}

type Venue struct {
	ID               int64
	ParentID         *int64 // set for sub-venues
	Slug             string
	Name             string
	Description      string
	Address          string
	District         string
	VenueType        string
	VenueTypes       []string // secondary type tags
	CapacitySeated   *int
	CapacityStanding *int
	Status           VenueStatus
	Priority         *int // 1..3, nil = unranked
	PrioritySource   string
	HomepageSlot     *HomepageSlot
}

// Tier reports which precedence group the venue belongs to. A venue with
// priority 1 sourced from a homepage slot is featured, never ordinary
// tier 1.
func (v Venue) Tier() Tier {
	if v.Priority == nil {
		return TierUnranked
	}

	switch *v.Priority {
	case 1:
		if v.PrioritySource == PrioritySourceHomepage {
			return TierFeatured
		}
		return TierPriority1
	case 2:
		return TierPriority2
	case 3:
		return TierPriority3
	default:
		return TierUnranked
	}
}

type Inquiry struct {
	ID         uuid.UUID
	VenueID    int64
	Name       string
	Email      string
	Phone      string
	EventDate  *time.Time
	GuestCount *int
	Message    string
	CreatedAt  time.Time
}
