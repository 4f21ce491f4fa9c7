// Package listing builds the view-models for Fyyur's pages.
//
// Every builder is a pure function of the entities it is given and of the
// evaluation instant, so the same inputs always produce the same page.
package listing

import (
	"sort"
	"time"

	"github.com/justestif/fyyur/internal/db"
)

// IsUpcoming reports whether a show starting at start is still to come at now.
// A show starting exactly at now counts as past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// Summary is the short form of a venue or artist used in lists and search results.
type Summary struct {
	ID               int
	Name             string
	NumUpcomingShows int
}

// Area groups the venues of one city and state.
type Area struct {
	City   string
	State  string
	Venues []Summary
}

// ShowRow is one line of the all-shows page.
type ShowRow struct {
	ID              int
	VenueID         int
	VenueName       string
	ArtistID        int
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

type areaKey struct {
	city  string
	state string
}

// VenueAreas partitions venues by (city, state). Areas are sorted by city then
// state, venues inside an area by ID.
func VenueAreas(venues []db.Venue, shows []db.Show, now time.Time) []Area {
	upcoming := upcomingBy(shows, now, func(s db.Show) int { return s.VenueID })

	index := make(map[areaKey]int)
	var areas []Area
	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	for _, a := range areas {
		sortSummaries(a.Venues)
	}
	return areas
}

// VenueList returns every venue sorted by ID, without show counts.
func VenueList(venues []db.Venue) []Summary {
	out := make([]Summary, 0, len(venues))
	for _, v := range venues {
		out = append(out, Summary{ID: v.ID, Name: v.Name})
	}
	sortSummaries(out)
	return out
}

// ArtistList returns every artist sorted by ID.
func ArtistList(artists []db.Artist) []Summary {
	out := make([]Summary, 0, len(artists))
	for _, a := range artists {
		out = append(out, Summary{ID: a.ID, Name: a.Name})
	}
	sortSummaries(out)
	return out
}

// AllShows projects every show for the shows page, ordered by start time then ID.
func AllShows(shows []db.ShowListing) []ShowRow {
	rows := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		rows = append(rows, ShowRow{
			ID:              s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].StartTime.Equal(rows[j].StartTime) {
			return rows[i].StartTime.Before(rows[j].StartTime)
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// Recent returns up to n summaries with the highest IDs, newest first.
func Recent(summaries []Summary, n int) []Summary {
	out := make([]Summary, len(summaries))
	copy(out, summaries)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Shows strips the joined columns from show listings.
func Shows(listings []db.ShowListing) []db.Show {
	shows := make([]db.Show, len(listings))
	for i, l := range listings {
		shows[i] = l.Show
	}
	return shows
}

// upcomingBy counts upcoming shows per owner ID.
func upcomingBy(shows []db.Show, now time.Time, owner func(db.Show) int) map[int]int {
	counts := make(map[int]int)
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			counts[owner(s)]++
		}
	}
	return counts
}

func sortSummaries(s []Summary) {
	sort.Slice(s, func(i, j int) bool { return s[i].ID < s[j].ID })
}
