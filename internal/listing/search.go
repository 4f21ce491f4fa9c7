package listing

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/justestif/fyyur/internal/db"
)

// SearchResult is the view-model for the venue and artist search pages.
type SearchResult struct {
	Term  string
	Count int
	Data  []Summary
}

// MatchesName reports whether name contains term, ignoring case.
// An empty term matches every name.
func MatchesName(name, term string) bool {
	if term == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(term))
}

// SearchVenues returns the venues whose name contains term.
func SearchVenues(venues []db.Venue, shows []db.Show, term string, now time.Time) SearchResult {
	upcoming := upcomingBy(shows, now, func(s db.Show) int { return s.VenueID })

	result := SearchResult{Term: term, Data: []Summary{}}
	for _, v := range venues {
		if !MatchesName(v.Name, term) {
			continue
		}
		result.Data = append(result.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	sortSummaries(result.Data)
	result.Count = len(result.Data)
	return result
}

// SearchArtists returns the artists whose name contains term.
func SearchArtists(artists []db.Artist, shows []db.Show, term string, now time.Time) SearchResult {
	upcoming := upcomingBy(shows, now, func(s db.Show) int { return s.ArtistID })

	result := SearchResult{Term: term, Data: []Summary{}}
	for _, a := range artists {
		if !MatchesName(a.Name, term) {
			continue
		}
		result.Data = append(result.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	sortSummaries(result.Data)
	result.Count = len(result.Data)
	return result
}
