package httpgin

import (
	"time"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/service/venues"
)

type VenueSummary struct {
	ID               int64    `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	District         string   `json:"district,omitempty"`
	VenueType        string   `json:"venue_type,omitempty"`
	VenueTypes       []string `json:"venue_types,omitempty"`
	CapacitySeated   *int     `json:"capacity_seated,omitempty"`
	CapacityStanding *int     `json:"capacity_standing,omitempty"`
	Status           string   `json:"status"`
}

func toVenueSummary(v domain.Venue) VenueSummary {
	return VenueSummary{
		ID:               v.ID,
		Slug:             v.Slug,
		Name:             v.Name,
		Address:          v.Address,
		District:         v.District,
		VenueType:        v.VenueType,
		VenueTypes:       v.VenueTypes,
		CapacitySeated:   v.CapacitySeated,
		CapacityStanding: v.CapacityStanding,
		Status:           string(v.Status),
	}
}

func toVenueSummaries(vs []domain.Venue) []VenueSummary {
	out := make([]VenueSummary, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVenueSummary(v))
	}
	return out
}

type ListVenuesResponse struct {
	Venues      []VenueSummary `json:"venues"`
	TotalCount  int            `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	HasMore     bool           `json:"has_more"`
	OrderSeed   int32          `json:"order_seed"`
}

type VenueDetailResponse struct {
	VenueSummary
	Description string         `json:"description,omitempty"`
	SubVenues   []VenueSummary `json:"sub_venues,omitempty"`
}

func toVenueDetail(d *venues.Detail) VenueDetailResponse {
	return VenueDetailResponse{
		VenueSummary: toVenueSummary(d.Venue),
		Description:  d.Venue.Description,
		SubVenues:    toVenueSummaries(d.SubVenues),
	}
}

type CreateVenueRequest struct {
	ParentID         *int64   `json:"parent_id"`
	Slug             string   `json:"slug" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Address          string   `json:"address" binding:"required"`
	District         string   `json:"district"`
	VenueType        string   `json:"venue_type"`
	VenueTypes       []string `json:"venue_types"`
	CapacitySeated   *int     `json:"capacity_seated" binding:"omitempty,gte=0"`
	CapacityStanding *int     `json:"capacity_standing" binding:"omitempty,gte=0"`
	Status           string   `json:"status" binding:"omitempty,oneof=draft published active hidden"`
}

type CreateVenueResponse struct {
	VenueID int64 `json:"venue_id"`
}

type SetPriorityRequest struct {
	Priority int `json:"priority" binding:"required,min=1,max=3"`
}

type AssignSlotRequest struct {
	VenueID int64 `json:"venue_id" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published active hidden"`
}

type CreateInquiryRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	EventDate  string `json:"event_date"`
	GuestCount *int   `json:"guest_count" binding:"omitempty,gt=0"`
	Message    string `json:"message"`
}

type CreateInquiryResponse struct {
	InquiryID string `json:"inquiry_id"`
}

type InquiryResponse struct {
	ID         string     `json:"id"`
	VenueID    int64      `json:"venue_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	GuestCount *int       `json:"guest_count,omitempty"`
	Message    string     `json:"message,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toInquiryResponse(inq domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         inq.ID.String(),
		VenueID:    inq.VenueID,
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      inq.Phone,
		EventDate:  inq.EventDate,
		GuestCount: inq.GuestCount,
		Message:    inq.Message,
		CreatedAt:  inq.CreatedAt,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
