package web

import (
	"context"
	"errors"
	"sync"

	"github.com/justestif/fyyur/internal/db"
)

// memStore is an in-memory Store enforcing the same references and delete
// rules as the PostgreSQL repositories under the restrict policy.
type memStore struct {
	mu      sync.Mutex
	venues  map[int]db.Venue
	artists map[int]db.Artist
	shows   []db.Show
	nextID  int
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{
		venues:  make(map[int]db.Venue),
		artists: make(map[int]db.Artist),
		nextID:  100,
	}
}

func (s *memStore) Venues() VenueStore             { return memVenues{s} }
func (s *memStore) Artists() ArtistStore           { return memArtists{s} }
func (s *memStore) Shows() ShowStore               { return memShows{s} }
func (s *memStore) Ping(ctx context.Context) error { return s.pingErr }

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) hasShows(match func(db.Show) bool) bool {
	for _, sh := range s.shows {
		if match(sh) {
			return true
		}
	}
	return false
}

func (s *memStore) listing(match func(db.Show) bool) []db.ShowListing {
	var out []db.ShowListing
	for _, sh := range s.shows {
		if !match(sh) {
			continue
		}
		a, v := s.artists[sh.ArtistID], s.venues[sh.VenueID]
		out = append(out, db.ShowListing{
			Show:            sh,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
		})
	}
	return out
}

type memVenues struct{ s *memStore }

func (m memVenues) List(ctx context.Context) ([]db.Venue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]db.Venue, 0, len(m.s.venues))
	for _, v := range m.s.venues {
		out = append(out, v)
	}
	return out, nil
}

func (m memVenues) Get(ctx context.Context, id int) (*db.Venue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	v, ok := m.s.venues[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &v, nil
}

func (m memVenues) Create(ctx context.Context, venue *db.Venue) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	venue.ID = m.s.id()
	m.s.venues[venue.ID] = *venue
	return nil
}

func (m memVenues) Update(ctx context.Context, venue *db.Venue) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.venues[venue.ID]; !ok {
		return db.ErrNotFound
	}
	m.s.venues[venue.ID] = *venue
	return nil
}

func (m memVenues) Delete(ctx context.Context, id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.venues[id]; !ok {
		return db.ErrNotFound
	}
	if m.s.hasShows(func(sh db.Show) bool { return sh.VenueID == id }) {
		return db.ErrHasShows
	}
	delete(m.s.venues, id)
	return nil
}

type memArtists struct{ s *memStore }

func (m memArtists) List(ctx context.Context) ([]db.Artist, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]db.Artist, 0, len(m.s.artists))
	for _, a := range m.s.artists {
		out = append(out, a)
	}
	return out, nil
}

func (m memArtists) Get(ctx context.Context, id int) (*db.Artist, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	a, ok := m.s.artists[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &a, nil
}

func (m memArtists) Create(ctx context.Context, artist *db.Artist) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	artist.ID = m.s.id()
	m.s.artists[artist.ID] = *artist
	return nil
}

func (m memArtists) Update(ctx context.Context, artist *db.Artist) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.artists[artist.ID]; !ok {
		return db.ErrNotFound
	}
	m.s.artists[artist.ID] = *artist
	return nil
}

func (m memArtists) Delete(ctx context.Context, id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.artists[id]; !ok {
		return db.ErrNotFound
	}
	if m.s.hasShows(func(sh db.Show) bool { return sh.ArtistID == id }) {
		return db.ErrHasShows
	}
	delete(m.s.artists, id)
	return nil
}

type memShows struct{ s *memStore }

func (m memShows) List(ctx context.Context) ([]db.ShowListing, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.listing(func(db.Show) bool { return true }), nil
}

func (m memShows) ListForVenue(ctx context.Context, venueID int) ([]db.ShowListing, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.listing(func(sh db.Show) bool { return sh.VenueID == venueID }), nil
}

func (m memShows) ListForArtist(ctx context.Context, artistID int) ([]db.ShowListing, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.listing(func(sh db.Show) bool { return sh.ArtistID == artistID }), nil
}

func (m memShows) Create(ctx context.Context, show *db.Show) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	_, artistOK := m.s.artists[show.ArtistID]
	_, venueOK := m.s.venues[show.VenueID]
	if !artistOK || !venueOK {
		return errors.Join(errors.New("inserting show"), db.ErrInvalidReference)
	}
	show.ID = m.s.id()
	m.s.shows = append(m.s.shows, *show)
	return nil
}

// panicStore panics on every repository access.
type panicStore struct{ *memStore }

func (panicStore) Venues() VenueStore { panic("venues unavailable") }
