package admin

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/repository"
	postgresrepo "github.com/prostormat/prostormat-api/internal/repository/postgres"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
	"github.com/prostormat/prostormat-api/internal/uow"
)

// MaxSlotPosition bounds the homepage carousel.
const MaxSlotPosition = 12

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.VenuesPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, pubsub *redisrepo.VenuesPubSub) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// CreateVenue creates a venue record and returns its ID.
//
// Returns:
//   - int64: the created venue ID.
//   - error: admin.ErrVenueConflict if the slug is already taken.
func (s *Service) CreateVenue(ctx context.Context, p postgresrepo.CreateVenueParams) (int64, error) {
	const op = "service.admin.CreateVenue"

	if p.Status == "" {
		p.Status = domain.VenueDraft
	}
	if !validStatus(p.Status) {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateVenue(ctx, p)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrVenueConflict)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateCatalog(ctx)
			_ = s.pubsub.PublishVenueChanged(ctx, id, p.Slug)
		})
		return nil
	})

	return id, err
}

// SetPriority assigns an organic tier (1..3) or clears it (nil). A venue
// holding a homepage slot must be released from it first; its priority
// belongs to the slot assignment.
func (s *Service) SetPriority(ctx context.Context, venueID int64, priority *int) error {
	const op = "service.admin.SetPriority"

	if priority != nil && (*priority < 1 || *priority > 3) {
		return fmt.Errorf("%s: %w", op, ErrInvalidPriority)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		v, err := s.store.Venues().With(tx).GetByID(ctx, venueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if v.HomepageSlot != nil {
			return fmt.Errorf("%s: %w", op, ErrVenueHasSlot)
		}

		if err := s.store.Admin().With(tx).SetPriority(ctx, venueID, priority, ""); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, v.Slug)
			_ = s.pubsub.PublishVenueChanged(ctx, venueID, v.Slug)
		})
		return nil
	})
}

// AssignHomepageSlot places a venue in a fixed homepage position. The
// venue is promoted to the featured tier in the same transaction.
//
// Returns:
//   - error: admin.ErrSlotTaken if the position or venue is already
//     assigned, admin.ErrVenueNotFound if the venue does not exist,
//     admin.ErrInvalidPosition for positions outside 1..12.
func (s *Service) AssignHomepageSlot(ctx context.Context, position int, venueID int64) error {
	const op = "service.admin.AssignHomepageSlot"

	if position < 1 || position > MaxSlotPosition {
		return fmt.Errorf("%s: %w", op, ErrInvalidPosition)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		v, err := s.store.Venues().With(tx).GetByID(ctx, venueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Admin().With(tx).AssignHomepageSlot(ctx, position, venueID); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrSlotTaken)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		one := 1
		if err := s.store.Admin().With(tx).SetPriority(ctx, venueID, &one, domain.PrioritySourceHomepage); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, v.Slug)
			_ = s.pubsub.PublishVenueChanged(ctx, venueID, v.Slug)
		})
		return nil
	})
}

// ReleaseHomepageSlot frees a position and demotes the venue that held
// it back to unranked.
func (s *Service) ReleaseHomepageSlot(ctx context.Context, position int) error {
	const op = "service.admin.ReleaseHomepageSlot"

	if position < 1 || position > MaxSlotPosition {
		return fmt.Errorf("%s: %w", op, ErrInvalidPosition)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		venueID, err := s.store.Admin().With(tx).ReleaseHomepageSlot(ctx, position)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSlotEmpty)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Admin().With(tx).SetPriority(ctx, venueID, nil, ""); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		v, err := s.store.Venues().With(tx).GetByID(ctx, venueID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, v.Slug)
			_ = s.pubsub.PublishVenueChanged(ctx, venueID, v.Slug)
		})
		return nil
	})
}

// SetStatus changes a venue's visibility status.
func (s *Service) SetStatus(ctx context.Context, venueID int64, status domain.VenueStatus) error {
	const op = "service.admin.SetStatus"

	if !validStatus(status) {
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		v, err := s.store.Venues().With(tx).GetByID(ctx, venueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Admin().With(tx).SetStatus(ctx, venueID, status); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, v.Slug)
			_ = s.pubsub.PublishVenueChanged(ctx, venueID, v.Slug)
		})
		return nil
	})
}

func validStatus(s domain.VenueStatus) bool {
	return slices.Contains([]domain.VenueStatus{
		domain.VenueDraft,
		domain.VenuePublished,
		domain.VenueActive,
		domain.VenueHidden,
	}, s)
}
