package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// VenueRepository handles venue database operations.
type VenueRepository struct {
	db *DB
}

const venueColumns = `id, name, genres, city, state, address, phone, website,
		image_link, facebook_link, seeking_talent, seeking_description`

// Create inserts a new venue and sets its ID.
func (r *VenueRepository) Create(ctx context.Context, venue *Venue) error {
	query := `
		INSERT INTO venues (name, genres, city, state, address, phone, website,
			image_link, facebook_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			venue.Name,
			nonNil(venue.Genres),
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.Website,
			venue.ImageLink,
			venue.FacebookLink,
			venue.SeekingTalent,
			venue.SeekingDescription,
		).Scan(&venue.ID)
		if err != nil {
			return fmt.Errorf("inserting venue: %w", err)
		}
		return nil
	})
}

// Get retrieves a venue by ID.
func (r *VenueRepository) Get(ctx context.Context, id int) (*Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	venue, err := scanVenue(r.db.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying venue: %w", err)
	}
	return &venue, nil
}

// List retrieves all venues ordered by ID.
func (r *VenueRepository) List(ctx context.Context) ([]Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying venues: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning venue: %w", err)
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

// Update overwrites every mutable field of an existing venue.
func (r *VenueRepository) Update(ctx context.Context, venue *Venue) error {
	query := `
		UPDATE venues
		SET name = $2, genres = $3, city = $4, state = $5, address = $6, phone = $7,
			website = $8, image_link = $9, facebook_link = $10, seeking_talent = $11,
			seeking_description = $12
		WHERE id = $1
	`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			nonNil(venue.Genres),
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.Website,
			venue.ImageLink,
			venue.FacebookLink,
			venue.SeekingTalent,
			venue.SeekingDescription,
		)
		if err != nil {
			return fmt.Errorf("updating venue: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes a venue by ID, applying the configured delete policy to its shows.
func (r *VenueRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if r.db.policy == DeleteCascade {
			if _, err := tx.Exec(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
				return fmt.Errorf("deleting venue shows: %w", err)
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return ErrHasShows
		}
		if err != nil {
			return fmt.Errorf("deleting venue: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Count returns the number of venues.
func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting venues: %w", err)
	}
	return count, nil
}

func scanVenue(row pgx.Row) (Venue, error) {
	var venue Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Genres,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.Website,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
	)
	return venue, err
}

// nonNil returns an empty slice for nil so the NOT NULL array columns accept it.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
