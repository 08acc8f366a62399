package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prostormat/prostormat-api/internal/domain"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
)

// PageSize is the fixed listing window.
const PageSize = 20

// VenueSource is the store boundary: fetch every venue in the status
// set, store-side pagination deliberately absent. The catalog is small
// enough (low thousands) that ordering in memory is the cheaper side of
// the trade against broken pagination.
type VenueSource interface {
	ListForRanking(ctx context.Context, statuses []domain.VenueStatus, includeSubvenues bool) ([]domain.Venue, error)
}

type Config struct {
	CatalogTTL time.Duration
	PageSize   int
}

type Service struct {
	source VenueSource
	cache  *redisrepo.Cache
	logger *slog.Logger
	cfg    Config
}

// New builds the listing service. cache may be nil; catalog reads then
// always hit the source.
func New(source VenueSource, cache *redisrepo.Cache, logger *slog.Logger, cfg Config) *Service {
	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = 60 * time.Second
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = PageSize
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		source: source,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// Params are the listing inputs after transport-level parsing. Seed is
// nil on a session's first request; the service then mints one and
// reports it in the page.
type Params struct {
	Filter        Filter
	Page          int
	Seed          *int32
	IncludeHidden bool
	IsAdmin       bool
}

type Page struct {
	Venues      []domain.Venue
	TotalCount  int
	CurrentPage int
	TotalPages  int
	HasMore     bool
	Seed        int32
}

// List compiles the filter, fetches the matching catalog, sequences it
// for the session seed and slices out the requested window.
//
// Returns:
//   - *Page: the window plus continuation state and the effective seed.
//   - error: listing.ErrStoreUnavailable when the venue store fails.
func (s *Service) List(ctx context.Context, p Params) (*Page, error) {
	const op = "service.listing.List"

	page := p.Page
	if page < 1 {
		page = 1
	}

	seed := MintSeed()
	if p.Seed != nil {
		seed = *p.Seed
	}

	filter := p.Filter
	filter.Statuses = effectiveStatuses(p)

	catalog, err := s.fetchCatalog(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
	}

	matched := filter.Apply(s.logger, catalog)
	sequenced := Sequence(matched, seed)

	size := s.cfg.PageSize
	window, hasMore := slicePage(sequenced, page, size)

	return &Page{
		Venues:      window,
		TotalCount:  len(sequenced),
		CurrentPage: page,
		TotalPages:  (len(sequenced) + size - 1) / size,
		HasMore:     hasMore,
		Seed:        seed,
	}, nil
}

// effectiveStatuses enforces the visibility gate: include_hidden is
// honored only for verified admins, everyone else silently gets the
// public set. Failing open here would leak hidden venues.
func effectiveStatuses(p Params) []domain.VenueStatus {
	if p.IncludeHidden && p.IsAdmin {
		return []domain.VenueStatus{
			domain.VenuePublished,
			domain.VenueActive,
			domain.VenueHidden,
			domain.VenueDraft,
		}
	}

	return domain.PublicStatuses()
}

// fetchCatalog serves the public top-level catalog from cache; admin
// previews and sub-venue listings always hit the store directly.
func (s *Service) fetchCatalog(ctx context.Context, f Filter) ([]domain.Venue, error) {
	public := len(f.Statuses) == 1 && f.Statuses[0] == domain.VenuePublished

	if s.cache == nil || !public || f.IncludeSubvenues {
		return s.source.ListForRanking(ctx, f.Statuses, f.IncludeSubvenues)
	}

	return redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenueCatalog(),
		s.cfg.CatalogTTL,
		func(ctx context.Context) ([]domain.Venue, error) {
			return s.source.ListForRanking(ctx, f.Statuses, false)
		},
	)
}

// slicePage cuts the fixed-size window [(page-1)*size, page*size) out of
// the sequenced list. Out-of-range pages yield an empty slice, never an
// error.
func slicePage(sequenced []domain.Venue, page, size int) ([]domain.Venue, bool) {
	start := (page - 1) * size
	if start >= len(sequenced) {
		return []domain.Venue{}, false
	}

	end := min(start+size, len(sequenced))

	return sequenced[start:end], end < len(sequenced)
}
