package forms

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/justestif/fyyur/internal/db"
)

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"genres":              {"Jazz", "Reggae"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"website":             {"https://www.themusicalhop.com"},
		"image_link":          {"https://example.com/hop.jpg"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"seeking_description": {"Looking for local artists."},
	}
}

func TestDecodeVenueSeekingTalentPresence(t *testing.T) {
	tests := []struct {
		name  string
		value []string
		set   bool
		want  bool
	}{
		{name: "absent", set: false, want: false},
		{name: "checkbox y", value: []string{"y"}, set: true, want: true},
		{name: "empty value still counts", value: []string{""}, set: true, want: true},
		{name: "literal false still counts", value: []string{"false"}, set: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validVenueValues()
			if tt.set {
				values["seeking_talent"] = tt.value
			}
			if got := DecodeVenue(values).SeekingTalent; got != tt.want {
				t.Errorf("SeekingTalent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVenueFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(url.Values)
		wantField string
	}{
		{name: "valid", mutate: func(url.Values) {}},
		{name: "optional fields empty", mutate: func(v url.Values) {
			v.Del("phone")
			v.Del("website")
			v.Del("image_link")
			v.Del("facebook_link")
			v.Del("seeking_description")
		}},
		{name: "missing name", mutate: func(v url.Values) { v.Del("name") }, wantField: "name"},
		{name: "blank name", mutate: func(v url.Values) { v.Set("name", "   ") }, wantField: "name"},
		{name: "no genres", mutate: func(v url.Values) { v.Del("genres") }, wantField: "genres"},
		{name: "unknown genre", mutate: func(v url.Values) { v.Add("genres", "Polka") }, wantField: "genres"},
		{name: "unknown state", mutate: func(v url.Values) { v.Set("state", "XX") }, wantField: "state"},
		{name: "missing address", mutate: func(v url.Values) { v.Del("address") }, wantField: "address"},
		{name: "bad phone", mutate: func(v url.Values) { v.Set("phone", "555") }, wantField: "phone"},
		{name: "bad website", mutate: func(v url.Values) { v.Set("website", "not a url") }, wantField: "website"},
		{name: "bad facebook link", mutate: func(v url.Values) { v.Set("facebook_link", "facebook") }, wantField: "facebook_link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validVenueValues()
			tt.mutate(values)

			errs := DecodeVenue(values).Validate()

			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestVenueFormRoundTrip(t *testing.T) {
	form := DecodeVenue(validVenueValues())
	venue := form.Venue(7)

	if venue.ID != 7 {
		t.Errorf("ID = %d, want 7", venue.ID)
	}
	if got := VenueFormFrom(venue); !reflect.DeepEqual(got, form) {
		t.Errorf("VenueFormFrom(Venue()) = %+v, want %+v", got, form)
	}
}

func TestArtistForm(t *testing.T) {
	values := url.Values{
		"name":          {"Guns N Petals"},
		"genres":        {"Rock n Roll"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"seeking_venue": {"y"},
		"address":       {"ignored"},
	}

	form := DecodeArtist(values)
	if errs := form.Validate(); errs != nil {
		t.Fatalf("Validate() = %v", errs)
	}
	if !form.SeekingVenue {
		t.Error("SeekingVenue = false, want true")
	}

	artist := form.Artist(3)
	want := db.Artist{
		ID:           3,
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: true,
	}
	if !reflect.DeepEqual(artist, want) {
		t.Errorf("Artist() = %+v, want %+v", artist, want)
	}
	if got := ArtistFormFrom(artist); !reflect.DeepEqual(got, form) {
		t.Errorf("ArtistFormFrom(Artist()) = %+v, want %+v", got, form)
	}

	delete(values, "seeking_venue")
	values.Del("city")
	form = DecodeArtist(values)
	if form.SeekingVenue {
		t.Error("SeekingVenue = true with key absent")
	}
	if _, ok := form.Validate()["city"]; !ok {
		t.Error("expected city error")
	}
}

func TestShowForm(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantField string
		wantStart time.Time
	}{
		{
			name:      "datetime-local",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2035-04-01T20:00"}},
			wantStart: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:      "space separated",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2019-05-21 21:30:00"}},
			wantStart: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		},
		{
			name:      "rfc3339 keeps its zone",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2035-04-01T20:00:00+02:00"}},
			wantStart: time.Date(2035, 4, 1, 18, 0, 0, 0, time.UTC),
		},
		{
			name:      "bad start time",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"tomorrow"}},
			wantField: "start_time",
		},
		{
			name:      "non numeric artist",
			values:    url.Values{"artist_id": {"four"}, "venue_id": {"1"}, "start_time": {"2035-04-01T20:00"}},
			wantField: "artist_id",
		},
		{
			name:      "zero venue",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"0"}, "start_time": {"2035-04-01T20:00"}},
			wantField: "venue_id",
		},
		{
			name:      "missing venue",
			values:    url.Values{"artist_id": {"4"}, "start_time": {"2035-04-01T20:00"}},
			wantField: "venue_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := DecodeShow(tt.values)
			errs := form.Validate()

			if tt.wantField != "" {
				if _, ok := errs[tt.wantField]; !ok {
					t.Errorf("Validate() = %v, want error on %q", errs, tt.wantField)
				}
				return
			}
			if errs != nil {
				t.Fatalf("Validate() = %v", errs)
			}

			show, err := form.Show(time.UTC)
			if err != nil {
				t.Fatalf("Show() error = %v", err)
			}
			if show.ArtistID != 4 || show.VenueID != 1 {
				t.Errorf("Show() IDs = %d/%d, want 4/1", show.ArtistID, show.VenueID)
			}
			if !show.StartTime.Equal(tt.wantStart) {
				t.Errorf("StartTime = %v, want %v", show.StartTime, tt.wantStart)
			}
		})
	}
}

func TestNewShowForm(t *testing.T) {
	now := time.Date(2026, 10, 18, 19, 45, 12, 0, time.UTC)
	form := NewShowForm(now)
	if form.StartTime != "2026-10-18T19:45" {
		t.Errorf("StartTime = %q", form.StartTime)
	}
	if form.ArtistID != "" || form.VenueID != "" {
		t.Errorf("IDs should be empty: %+v", form)
	}
}
