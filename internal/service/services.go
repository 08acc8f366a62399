package service

import (
	"log/slog"

	postgresrepo "github.com/prostormat/prostormat-api/internal/repository/postgres"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
	"github.com/prostormat/prostormat-api/internal/service/admin"
	"github.com/prostormat/prostormat-api/internal/service/inquiry"
	"github.com/prostormat/prostormat-api/internal/service/listing"
	"github.com/prostormat/prostormat-api/internal/service/venues"
)

type Services struct {
	Listing *listing.Service
	Venues  *venues.Service
	Admin   *admin.Service
	Inquiry *inquiry.Service
}

type Config struct {
	Listing listing.Config
	Venues  venues.Config
	Inquiry inquiry.Config
}

func NewServices(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.VenuesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Listing: listing.New(store.Venues(), cache, logger, cfg.Listing),
		Venues:  venues.New(store, cache, cfg.Venues),
		Admin:   admin.New(store, cache, pubsub),
		Inquiry: inquiry.New(store, pubsub, limiter, cfg.Inquiry),
	}
}
