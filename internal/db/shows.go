package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ShowRepository handles show database operations.
type ShowRepository struct {
	db *DB
}

const showListingQuery = `
	SELECT s.id, s.artist_id, s.venue_id, s.start_time,
		a.name, a.image_link, v.name, v.image_link
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v ON v.id = s.venue_id
`

// Create inserts a new show and sets its ID.
// Returns ErrInvalidReference if the artist or venue does not exist.
func (r *ShowRepository) Create(ctx context.Context, show *Show) error {
	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID)
		if isForeignKeyViolation(err) {
			return fmt.Errorf("inserting show: %w", ErrInvalidReference)
		}
		if err != nil {
			return fmt.Errorf("inserting show: %w", err)
		}
		return nil
	})
}

// List retrieves every show joined with its artist and venue.
func (r *ShowRepository) List(ctx context.Context) ([]ShowListing, error) {
	return r.query(ctx, showListingQuery+` ORDER BY s.start_time, s.id`)
}

// ListForVenue retrieves the shows held at a venue.
func (r *ShowRepository) ListForVenue(ctx context.Context, venueID int) ([]ShowListing, error) {
	return r.query(ctx, showListingQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

// ListForArtist retrieves the shows played by an artist.
func (r *ShowRepository) ListForArtist(ctx context.Context, artistID int) ([]ShowListing, error) {
	return r.query(ctx, showListingQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

// Count returns the number of shows.
func (r *ShowRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM shows`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting shows: %w", err)
	}
	return count, nil
}

func (r *ShowRepository) query(ctx context.Context, query string, args ...any) ([]ShowListing, error) {
	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowListing
	for rows.Next() {
		var s ShowListing
		if err := rows.Scan(
			&s.ID,
			&s.ArtistID,
			&s.VenueID,
			&s.StartTime,
			&s.ArtistName,
			&s.ArtistImageLink,
			&s.VenueName,
			&s.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scanning show: %w", err)
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}
