package listing

import (
	"testing"
	"time"

	"github.com/justestif/fyyur/internal/db"
)

var now = time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)

func TestIsUpcoming(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "future", start: now.Add(time.Nanosecond), want: true},
		{name: "exactly now is past", start: now, want: false},
		{name: "past", start: now.Add(-time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpcoming(tt.start, now); got != tt.want {
				t.Errorf("IsUpcoming(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestVenueAreas(t *testing.T) {
	venues := []db.Venue{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "Portland Hall", City: "Portland", State: "OR"},
		{ID: 5, Name: "Portland Barn", City: "Portland", State: "ME"},
	}
	shows := []db.Show{
		{ID: 1, VenueID: 1, ArtistID: 1, StartTime: now.Add(24 * time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 2, StartTime: now.Add(48 * time.Hour)},
		{ID: 3, VenueID: 1, ArtistID: 2, StartTime: now.Add(-48 * time.Hour)},
		{ID: 4, VenueID: 3, ArtistID: 1, StartTime: now},
	}

	areas := VenueAreas(venues, shows, now)

	wantKeys := []areaKey{
		{"New York", "NY"},
		{"Portland", "ME"},
		{"Portland", "OR"},
		{"San Francisco", "CA"},
	}
	if len(areas) != len(wantKeys) {
		t.Fatalf("got %d areas, want %d", len(areas), len(wantKeys))
	}
	for i, want := range wantKeys {
		if areas[i].City != want.city || areas[i].State != want.state {
			t.Errorf("area %d = %s/%s, want %s/%s", i, areas[i].City, areas[i].State, want.city, want.state)
		}
	}

	sf := areas[3].Venues
	if len(sf) != 2 || sf[0].ID != 1 || sf[1].ID != 3 {
		t.Fatalf("San Francisco venues = %+v, want IDs [1 3]", sf)
	}
	if sf[0].NumUpcomingShows != 2 {
		t.Errorf("venue 1 upcoming = %d, want 2", sf[0].NumUpcomingShows)
	}
	if sf[1].NumUpcomingShows != 0 {
		t.Errorf("venue 3 upcoming = %d, want 0 (show at now is past)", sf[1].NumUpcomingShows)
	}
}

func TestVenueAreasPartition(t *testing.T) {
	venues := []db.Venue{
		{ID: 1, City: "A", State: "X"},
		{ID: 2, City: "A", State: "Y"},
		{ID: 3, City: "B", State: "X"},
		{ID: 4, City: "A", State: "X"},
		{ID: 5, City: "a", State: "X"},
	}

	areas := VenueAreas(venues, nil, now)

	seen := make(map[int]int)
	for _, a := range areas {
		if len(a.Venues) == 0 {
			t.Errorf("area %s/%s is empty", a.City, a.State)
		}
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	for _, v := range venues {
		if seen[v.ID] != 1 {
			t.Errorf("venue %d appears in %d areas, want 1", v.ID, seen[v.ID])
		}
	}
	if len(seen) != len(venues) {
		t.Errorf("areas hold %d venues, want %d", len(seen), len(venues))
	}
}

func TestVenueAreasEmpty(t *testing.T) {
	if areas := VenueAreas(nil, nil, now); len(areas) != 0 {
		t.Errorf("VenueAreas(nil) = %+v, want none", areas)
	}
}

func TestArtistList(t *testing.T) {
	got := ArtistList([]db.Artist{
		{ID: 6, Name: "The Wild Sax Band"},
		{ID: 4, Name: "Guns N Petals"},
		{ID: 5, Name: "Matt Quevedo"},
	})

	want := []int{4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d artists, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("artist %d ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestAllShows(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	listings := []db.ShowListing{
		{Show: db.Show{ID: 3, ArtistID: 6, VenueID: 3, StartTime: start.Add(time.Hour)}, ArtistName: "The Wild Sax Band", VenueName: "Park Square"},
		{Show: db.Show{ID: 2, ArtistID: 5, VenueID: 3, StartTime: start}, ArtistName: "Matt Quevedo", VenueName: "Park Square"},
		{Show: db.Show{ID: 1, ArtistID: 4, VenueID: 1, StartTime: start.AddDate(-10, 0, 0)}, ArtistName: "Guns N Petals", ArtistImageLink: "gnp.jpg", VenueName: "The Musical Hop"},
		{Show: db.Show{ID: 4, ArtistID: 6, VenueID: 3, StartTime: start}, ArtistName: "The Wild Sax Band", VenueName: "Park Square"},
	}

	rows := AllShows(listings)

	wantIDs := []int{1, 2, 4, 3}
	if len(rows) != len(wantIDs) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantIDs))
	}
	for i, id := range wantIDs {
		if rows[i].ID != id {
			t.Errorf("row %d ID = %d, want %d", i, rows[i].ID, id)
		}
	}

	first := rows[0]
	if first.VenueID != 1 || first.VenueName != "The Musical Hop" || first.ArtistName != "Guns N Petals" || first.ArtistImageLink != "gnp.jpg" {
		t.Errorf("row projection = %+v", first)
	}
}

func TestShows(t *testing.T) {
	listings := []db.ShowListing{
		{Show: db.Show{ID: 1, ArtistID: 2, VenueID: 3, StartTime: now}, ArtistName: "x"},
	}
	shows := Shows(listings)
	if len(shows) != 1 || shows[0] != listings[0].Show {
		t.Errorf("Shows() = %+v", shows)
	}
}

func TestRecent(t *testing.T) {
	summaries := []Summary{{ID: 3}, {ID: 1}, {ID: 7}, {ID: 5}}

	got := Recent(summaries, 2)
	if len(got) != 2 || got[0].ID != 7 || got[1].ID != 5 {
		t.Errorf("Recent(_, 2) = %+v, want IDs 7, 5", got)
	}
	if summaries[0].ID != 3 {
		t.Error("Recent reordered its input")
	}
	if got := Recent(summaries, 10); len(got) != 4 {
		t.Errorf("len(Recent(_, 10)) = %d, want 4", len(got))
	}
	if got := Recent(nil, 3); len(got) != 0 {
		t.Errorf("Recent(nil, 3) = %+v, want empty", got)
	}
}

func TestVenueList(t *testing.T) {
	got := VenueList([]db.Venue{{ID: 3, Name: "Park Square"}, {ID: 1, Name: "The Musical Hop"}})
	if len(got) != 2 || got[0].ID != 1 || got[1].Name != "Park Square" {
		t.Errorf("VenueList = %+v, want venues 1, 3", got)
	}
}
