package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ArtistRepository handles artist database operations.
type ArtistRepository struct {
	db *DB
}

const artistColumns = `id, name, city, state, phone, website, genres,
		image_link, facebook_link, seeking_venue, seeking_description`

// Create inserts a new artist and sets its ID.
func (r *ArtistRepository) Create(ctx context.Context, artist *Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, website, genres,
			image_link, facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			artist.Website,
			nonNil(artist.Genres),
			artist.ImageLink,
			artist.FacebookLink,
			artist.SeekingVenue,
			artist.SeekingDescription,
		).Scan(&artist.ID)
		if err != nil {
			return fmt.Errorf("inserting artist: %w", err)
		}
		return nil
	})
}

// Get retrieves an artist by ID.
func (r *ArtistRepository) Get(ctx context.Context, id int) (*Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	artist, err := scanArtist(r.db.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying artist: %w", err)
	}
	return &artist, nil
}

// List retrieves all artists ordered by ID.
func (r *ArtistRepository) List(ctx context.Context) ([]Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning artist: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// Update overwrites every mutable field of an existing artist.
func (r *ArtistRepository) Update(ctx context.Context, artist *Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, website = $6, genres = $7,
			image_link = $8, facebook_link = $9, seeking_venue = $10, seeking_description = $11
		WHERE id = $1
	`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			artist.ID,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			artist.Website,
			nonNil(artist.Genres),
			artist.ImageLink,
			artist.FacebookLink,
			artist.SeekingVenue,
			artist.SeekingDescription,
		)
		if err != nil {
			return fmt.Errorf("updating artist: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes an artist by ID, applying the configured delete policy to its shows.
func (r *ArtistRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if r.db.policy == DeleteCascade {
			if _, err := tx.Exec(ctx, `DELETE FROM shows WHERE artist_id = $1`, id); err != nil {
				return fmt.Errorf("deleting artist shows: %w", err)
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return ErrHasShows
		}
		if err != nil {
			return fmt.Errorf("deleting artist: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Count returns the number of artists.
func (r *ArtistRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting artists: %w", err)
	}
	return count, nil
}

func scanArtist(row pgx.Row) (Artist, error) {
	var artist Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Website,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)
	return artist, err
}
