package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/repository"
)

type AdminRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AdminRepo) With(db DB) *AdminRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AdminRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

type CreateVenueParams struct {
	ParentID         *int64
	Slug             string
	Name             string
	Description      string
	Address          string
	District         string
	VenueType        string
	VenueTypes       []string
	CapacitySeated   *int
	CapacityStanding *int
	Status           domain.VenueStatus
}

func (r *AdminRepo) CreateVenue(ctx context.Context, p CreateVenueParams) (int64, error) {
	const op = "postgresrepo.AdminRepo.CreateVenue"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO venues(
			parent_id, slug, name, description, address, district,
			venue_type, venue_types, capacity_seated, capacity_standing, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		p.ParentID, p.Slug, p.Name, p.Description, p.Address, p.District,
		p.VenueType, p.VenueTypes, p.CapacitySeated, p.CapacityStanding,
		string(p.Status),
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// SetPriority sets or clears (priority == nil) a venue's tier along with
// its priority source tag.
func (r *AdminRepo) SetPriority(
	ctx context.Context,
	venueID int64,
	priority *int,
	source string,
) error {
	const op = "postgresrepo.AdminRepo.SetPriority"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE venues
		 SET priority = $2, priority_source = $3
		 WHERE id = $1`,
		venueID, priority, source,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// AssignHomepageSlot claims a slot position for a venue. A taken
// position or an already-placed venue surfaces as repository.ErrConflict
// via the unique constraints.
func (r *AdminRepo) AssignHomepageSlot(ctx context.Context, position int, venueID int64) error {
	const op = "postgresrepo.AdminRepo.AssignHomepageSlot"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO homepage_slots(position, venue_id)
		 VALUES ($1, $2)`,
		position, venueID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ReleaseHomepageSlot frees a slot position and reports which venue held
// it, so the caller can demote its priority in the same transaction.
func (r *AdminRepo) ReleaseHomepageSlot(ctx context.Context, position int) (int64, error) {
	const op = "postgresrepo.AdminRepo.ReleaseHomepageSlot"

	db := r.handle()

	var venueID int64
	if err := db.QueryRow(ctx,
		`DELETE FROM homepage_slots
		 WHERE position = $1
		 RETURNING venue_id`,
		position,
	).Scan(&venueID); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return venueID, nil
}

func (r *AdminRepo) SetStatus(ctx context.Context, venueID int64, status domain.VenueStatus) error {
	const op = "postgresrepo.AdminRepo.SetStatus"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE venues SET status = $2 WHERE id = $1`,
		venueID, string(status),
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
