package postgresrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prostormat/prostormat-api/internal/domain"
)

type InquiryRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *InquiryRepo) With(db DB) *InquiryRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *InquiryRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *InquiryRepo) Create(ctx context.Context, inq domain.Inquiry) (uuid.UUID, error) {
	const op = "postgresrepo.InquiryRepo.Create"

	db := r.handle()

	var id uuid.UUID
	if err := db.QueryRow(ctx,
		`INSERT INTO inquiries(
			venue_id, name, email, phone, event_date, guest_count, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		inq.VenueID, inq.Name, inq.Email, inq.Phone,
		inq.EventDate, inq.GuestCount, inq.Message,
	).Scan(&id); err != nil {
		return uuid.Nil, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *InquiryRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	const op = "postgresrepo.InquiryRepo.Get"

	db := r.handle()

	var inq domain.Inquiry
	err := db.QueryRow(ctx,
		`SELECT id, venue_id, name, email, phone, event_date, guest_count, message, created_at
		 FROM inquiries
		 WHERE id = $1`,
		id,
	).Scan(
		&inq.ID,
		&inq.VenueID,
		&inq.Name,
		&inq.Email,
		&inq.Phone,
		&inq.EventDate,
		&inq.GuestCount,
		&inq.Message,
		&inq.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &inq, nil
}

// ListForVenue lists a venue's inquiries, newest first.
func (r *InquiryRepo) ListForVenue(ctx context.Context, venueID int64, limit, offset int) ([]domain.Inquiry, error) {
	const op = "postgresrepo.InquiryRepo.ListForVenue"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, venue_id, name, email, phone, event_date, guest_count, message, created_at
		 FROM inquiries
		 WHERE venue_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		venueID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Inquiry
	for rows.Next() {
		var inq domain.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.VenueID,
			&inq.Name,
			&inq.Email,
			&inq.Phone,
			&inq.EventDate,
			&inq.GuestCount,
			&inq.Message,
			&inq.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
