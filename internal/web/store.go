package web

import (
	"context"

	"github.com/justestif/fyyur/internal/db"
)

// VenueStore is the venue persistence used by the handlers.
type VenueStore interface {
	List(ctx context.Context) ([]db.Venue, error)
	Get(ctx context.Context, id int) (*db.Venue, error)
	Create(ctx context.Context, venue *db.Venue) error
	Update(ctx context.Context, venue *db.Venue) error
	Delete(ctx context.Context, id int) error
}

// ArtistStore is the artist persistence used by the handlers.
type ArtistStore interface {
	List(ctx context.Context) ([]db.Artist, error)
	Get(ctx context.Context, id int) (*db.Artist, error)
	Create(ctx context.Context, artist *db.Artist) error
	Update(ctx context.Context, artist *db.Artist) error
	Delete(ctx context.Context, id int) error
}

// ShowStore is the show persistence used by the handlers.
type ShowStore interface {
	List(ctx context.Context) ([]db.ShowListing, error)
	ListForVenue(ctx context.Context, venueID int) ([]db.ShowListing, error)
	ListForArtist(ctx context.Context, artistID int) ([]db.ShowListing, error)
	Create(ctx context.Context, show *db.Show) error
}

// Store groups the repositories the web layer depends on.
type Store interface {
	Venues() VenueStore
	Artists() ArtistStore
	Shows() ShowStore
	Ping(ctx context.Context) error
}

// dbStore adapts *db.DB to Store.
type dbStore struct {
	database *db.DB
}

// NewDBStore returns a Store backed by PostgreSQL.
func NewDBStore(database *db.DB) Store {
	return dbStore{database: database}
}

func (s dbStore) Venues() VenueStore             { return s.database.Venues() }
func (s dbStore) Artists() ArtistStore           { return s.database.Artists() }
func (s dbStore) Shows() ShowStore               { return s.database.Shows() }
func (s dbStore) Ping(ctx context.Context) error { return s.database.Ping(ctx) }

// Ensure the repositories satisfy the handler interfaces.
var (
	_ VenueStore  = (*db.VenueRepository)(nil)
	_ ArtistStore = (*db.ArtistRepository)(nil)
	_ ShowStore   = (*db.ShowRepository)(nil)
)
