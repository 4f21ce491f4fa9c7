package listing

import (
	"sort"
	"time"

	"github.com/justestif/fyyur/internal/db"
)

// ShowEntry is a show as seen from a venue or artist page. ID, Name and
// ImageLink describe the counterpart: the artist on a venue page, the venue
// on an artist page.
type ShowEntry struct {
	ID        int
	Name      string
	ImageLink string
	StartTime time.Time
}

// Schedule splits an entity's shows around the evaluation instant.
type Schedule struct {
	UpcomingShows      []ShowEntry
	PastShows          []ShowEntry
	UpcomingShowsCount int
	PastShowsCount     int
}

// VenueDetail is the view-model for a single venue page.
type VenueDetail struct {
	db.Venue
	Schedule
}

// ArtistDetail is the view-model for a single artist page.
type ArtistDetail struct {
	db.Artist
	Schedule
}

// BuildVenueDetail assembles the venue page. shows must be the venue's shows.
func BuildVenueDetail(venue db.Venue, shows []db.ShowListing, now time.Time) VenueDetail {
	return VenueDetail{
		Venue: venue,
		Schedule: buildSchedule(shows, now, func(s db.ShowListing) ShowEntry {
			return ShowEntry{ID: s.ArtistID, Name: s.ArtistName, ImageLink: s.ArtistImageLink, StartTime: s.StartTime}
		}),
	}
}

// BuildArtistDetail assembles the artist page. shows must be the artist's shows.
func BuildArtistDetail(artist db.Artist, shows []db.ShowListing, now time.Time) ArtistDetail {
	return ArtistDetail{
		Artist: artist,
		Schedule: buildSchedule(shows, now, func(s db.ShowListing) ShowEntry {
			return ShowEntry{ID: s.VenueID, Name: s.VenueName, ImageLink: s.VenueImageLink, StartTime: s.StartTime}
		}),
	}
}

// buildSchedule classifies shows as upcoming (soonest first) or past (most
// recent first).
func buildSchedule(shows []db.ShowListing, now time.Time, entry func(db.ShowListing) ShowEntry) Schedule {
	sched := Schedule{
		UpcomingShows: []ShowEntry{},
		PastShows:     []ShowEntry{},
	}
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			sched.UpcomingShows = append(sched.UpcomingShows, entry(s))
		} else {
			sched.PastShows = append(sched.PastShows, entry(s))
		}
	}

	sort.SliceStable(sched.UpcomingShows, func(i, j int) bool {
		return sched.UpcomingShows[i].StartTime.Before(sched.UpcomingShows[j].StartTime)
	})
	sort.SliceStable(sched.PastShows, func(i, j int) bool {
		return sched.PastShows[i].StartTime.After(sched.PastShows[j].StartTime)
	})

	sched.UpcomingShowsCount = len(sched.UpcomingShows)
	sched.PastShowsCount = len(sched.PastShows)
	return sched
}
