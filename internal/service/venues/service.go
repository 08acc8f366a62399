package venues

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/repository"
	postgresrepo "github.com/prostormat/prostormat-api/internal/repository/postgres"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
)

type Config struct {
	DetailTTL   time.Duration
	FeaturedTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.DetailTTL <= 0 {
		cfg.DetailTTL = 60 * time.Second
	}

	if cfg.FeaturedTTL <= 0 {
		cfg.FeaturedTTL = 60 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// Detail is the venue page payload: the venue plus its published
// sub-venues.
type Detail struct {
	Venue     domain.Venue
	SubVenues []domain.Venue
}

// GetDetail retrieves a venue by slug together with its sub-venues.
// Non-public venues stay invisible to non-admin callers, indistinguishable
// from venues that do not exist.
//
// Returns:
//   - *Detail: the venue page payload.
//   - error: venues.ErrVenueNotFound when absent or not visible.
func (s *Service) GetDetail(ctx context.Context, slug string, isAdmin bool) (*Detail, error) {
	const op = "service.venues.GetDetail"

	if isAdmin {
		d, err := s.loadDetail(ctx, slug, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return d, nil
	}

	key := redisrepo.KeyVenueDetail(slug)

	detail, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.DetailTTL,
		func(ctx context.Context) (Detail, error) {
			d, err := s.loadDetail(ctx, slug, false)
			if err != nil {
				return Detail{}, err
			}
			return *d, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &detail, nil
}

func (s *Service) loadDetail(ctx context.Context, slug string, isAdmin bool) (*Detail, error) {
	v, err := s.store.Venues().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	if !isAdmin && !slices.Contains(domain.PublicStatuses(), v.Status) {
		return nil, ErrVenueNotFound
	}

	subs, err := s.store.Venues().ListSubVenues(ctx, v.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return &Detail{Venue: *v, SubVenues: subs}, nil
}

// Featured lists the homepage carousel: published venues holding a
// slot, in slot order.
func (s *Service) Featured(ctx context.Context) ([]domain.Venue, error) {
	const op = "service.venues.Featured"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyHomepageVenues(),
		s.cfg.FeaturedTTL,
		func(ctx context.Context) ([]domain.Venue, error) {
			return s.store.Venues().ListFeatured(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
