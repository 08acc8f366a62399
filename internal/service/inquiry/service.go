package inquiry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/repository"
	postgresrepo "github.com/prostormat/prostormat-api/internal/repository/postgres"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
	"github.com/prostormat/prostormat-api/internal/uow"
)

type Config struct {
	DefaultListPage int
	MaxListPage     int
}

type Service struct {
	store   *postgresrepo.Store
	pubsub  *redisrepo.VenuesPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	cfg     Config
}

func New(
	store *postgresrepo.Store,
	pubsub *redisrepo.VenuesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.DefaultListPage <= 0 {
		cfg.DefaultListPage = 50
	}

	if cfg.MaxListPage <= 0 {
		cfg.MaxListPage = 200
	}

	return &Service{
		store:   store,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
	}
}

// Create records a contact request for a published venue. The write is
// rate limited per caller key. The notification collaborator picks the
// inquiry up from the pubsub channel after commit; no mail is sent here.
//
// Returns:
//   - uuid.UUID: the created inquiry ID.
//   - error: inquiry.ErrVenueNotFound for unknown or non-public venues,
//     inquiry.ErrRateLimited when the caller exceeded the window.
func (s *Service) Create(ctx context.Context, venueSlug string, inq domain.Inquiry, rlKey string) (uuid.UUID, error) {
	const op = "service.inquiry.Create"

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return uuid.Nil, fmt.Errorf("%s:%w, retry in %s", op, ErrRateLimited, retry)
		}
	}

	var id uuid.UUID

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		v, err := s.store.Venues().With(tx).GetBySlug(ctx, venueSlug)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		// Hidden venues take no inquiries, and their absence must look
		// identical to a venue that does not exist.
		if !slices.Contains(domain.PublicStatuses(), v.Status) {
			return fmt.Errorf("%s:%w", op, ErrVenueNotFound)
		}

		inq.VenueID = v.ID

		id, err = s.store.Inquiries().With(tx).Create(ctx, inq)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishInquiryCreated(ctx, v.ID)
		})
		return nil
	})

	return id, err
}

// Get retrieves one inquiry. Admin-only at the transport boundary.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	const op = "service.inquiry.Get"

	inq, err := s.store.Inquiries().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrInquiryNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return inq, nil
}

// ListForVenue lists a venue's inquiries, newest first.
func (s *Service) ListForVenue(ctx context.Context, venueID int64, limit, offset int) ([]domain.Inquiry, error) {
	const op = "service.inquiry.ListForVenue"

	if limit <= 0 {
		limit = s.cfg.DefaultListPage
	}

	if limit > s.cfg.MaxListPage {
		limit = s.cfg.MaxListPage
	}

	out, err := s.store.Inquiries().ListForVenue(ctx, venueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
