package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prostormat/prostormat-api/internal/domain"
)

type VenueRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *VenueRepo) With(db DB) *VenueRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *VenueRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const venueColumns = `
	v.id, v.parent_id, v.slug, v.name, v.description, v.address,
	v.district, v.venue_type, v.venue_types,
	v.capacity_seated, v.capacity_standing,
	v.status, v.priority, v.priority_source, hs.position`

func scanVenue(row pgx.Row) (domain.Venue, error) {
	var v domain.Venue
	var status string
	var slotPosition *int

	err := row.Scan(
		&v.ID,
		&v.ParentID,
		&v.Slug,
		&v.Name,
		&v.Description,
		&v.Address,
		&v.District,
		&v.VenueType,
		&v.VenueTypes,
		&v.CapacitySeated,
		&v.CapacityStanding,
		&status,
		&v.Priority,
		&v.PrioritySource,
		&slotPosition,
	)
	if err != nil {
		return domain.Venue{}, err
	}

	v.Status = domain.VenueStatus(status)
	if slotPosition != nil {
		v.HomepageSlot = &domain.HomepageSlot{Position: *slotPosition}
	}

	return v, nil
}

// ListForRanking fetches every venue in the given status set, projected
// to the fields the listing sequencer needs. No pagination happens here:
// ordering is done in memory so it stays stable across pages.
//
// Returns:
//   - []domain.Venue: the matching venues in no particular order.
//   - error: repository-level error on store failure.
func (r *VenueRepo) ListForRanking(
	ctx context.Context,
	statuses []domain.VenueStatus,
	includeSubvenues bool,
) ([]domain.Venue, error) {
	const op = "postgresrepo.VenueRepo.ListForRanking"

	db := r.handle()

	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}

	q := `SELECT ` + venueColumns + `
		 FROM venues v
		 LEFT JOIN homepage_slots hs ON hs.venue_id = v.id
		 WHERE v.status = ANY($1)`
	if !includeSubvenues {
		q += ` AND v.parent_id IS NULL`
	}

	rows, err := db.Query(ctx, q, ss)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetBySlug retrieves a single venue by its slug.
//
// Returns:
//   - *domain.Venue: the venue when found.
//   - error: repository.ErrNotFound if no venue carries the slug.
func (r *VenueRepo) GetBySlug(ctx context.Context, slug string) (*domain.Venue, error) {
	const op = "postgresrepo.VenueRepo.GetBySlug"

	db := r.handle()

	v, err := scanVenue(db.QueryRow(ctx,
		`SELECT `+venueColumns+`
		 FROM venues v
		 LEFT JOIN homepage_slots hs ON hs.venue_id = v.id
		 WHERE v.slug = $1`,
		slug,
	))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &v, nil
}

// GetByID retrieves a single venue by its ID.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	const op = "postgresrepo.VenueRepo.GetByID"

	db := r.handle()

	v, err := scanVenue(db.QueryRow(ctx,
		`SELECT `+venueColumns+`
		 FROM venues v
		 LEFT JOIN homepage_slots hs ON hs.venue_id = v.id
		 WHERE v.id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &v, nil
}

// ListSubVenues lists the published sub-venues of a parent venue,
// ordered by name for a stable detail-page layout.
func (r *VenueRepo) ListSubVenues(ctx context.Context, parentID int64) ([]domain.Venue, error) {
	const op = "postgresrepo.VenueRepo.ListSubVenues"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT `+venueColumns+`
		 FROM venues v
		 LEFT JOIN homepage_slots hs ON hs.venue_id = v.id
		 WHERE v.parent_id = $1 AND v.status = $2
		 ORDER BY v.name`,
		parentID, string(domain.VenuePublished),
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListFeatured lists published venues that hold a homepage slot, in slot
// order. Slot positions are unique so the order is total.
func (r *VenueRepo) ListFeatured(ctx context.Context) ([]domain.Venue, error) {
	const op = "postgresrepo.VenueRepo.ListFeatured"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT `+venueColumns+`
		 FROM venues v
		 JOIN homepage_slots hs ON hs.venue_id = v.id
		 WHERE v.status = $1
		 ORDER BY hs.position`,
		string(domain.VenuePublished),
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
