package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// VenuesPubSub fans out venue-change notifications so that every API
// replica can drop its local cache entries, and so the notification
// collaborator can pick up new inquiries.
type VenuesPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewVenuesPubSub(rdb *redis.Client) *VenuesPubSub {
	return &VenuesPubSub{
		rdb:     rdb,
		channel: ChannelVenuesChanged(),
	}
}

type venueChangedMsg struct {
	Type    string `json:"type"`
	VenueID int64  `json:"venue_id"`
	Slug    string `json:"slug,omitempty"`
	TsUnix  int64  `json:"ts_unix"`
}

func (p *VenuesPubSub) PublishVenueChanged(ctx context.Context, venueID int64, slug string) error {
	msg := venueChangedMsg{
		Type:    "venue_changed",
		VenueID: venueID,
		Slug:    slug,
		TsUnix:  time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *VenuesPubSub) PublishInquiryCreated(ctx context.Context, venueID int64) error {
	msg := venueChangedMsg{
		Type:    "inquiry_created",
		VenueID: venueID,
		TsUnix:  time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *VenuesPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, venueID int64, slug string)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev venueChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.Type == "venue_changed" && ev.VenueID != 0 {
				handler(ctx, ev.VenueID, ev.Slug)
			}
		}
	}
}
