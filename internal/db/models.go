package db

import "time"

// Venue represents a place that hosts shows.
type Venue struct {
	ID                 int
	Name               string
	Genres             []string
	City               string
	State              string
	Address            string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
}

// Artist represents a performer.
type Artist struct {
	ID                 int
	Name               string
	City               string
	State              string
	Phone              string
	Website            string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
}

// Show links an artist to a venue at a point in time.
type Show struct {
	ID        int
	ArtistID  int
	VenueID   int
	StartTime time.Time
}

// ShowListing is a show joined with its artist and venue.
type ShowListing struct {
	Show
	ArtistName      string
	ArtistImageLink string
	VenueName       string
	VenueImageLink  string
}
