package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/justestif/fyyur/internal/db"
)

// StartTimeInputLayout is the layout used to prefill datetime-local inputs.
const StartTimeInputLayout = "2006-01-02T15:04"

// ShowForm is the create form for shows. IDs stay strings so an invalid
// submission can be echoed back unchanged.
type ShowForm struct {
	ArtistID  string `form:"artist_id"  validate:"required,id"`
	VenueID   string `form:"venue_id"   validate:"required,id"`
	StartTime string `form:"start_time" validate:"required,starttime"`
}

// DecodeShow reads a show form from submitted values.
func DecodeShow(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  field(values, "artist_id"),
		VenueID:   field(values, "venue_id"),
		StartTime: field(values, "start_time"),
	}
}

// NewShowForm returns an empty show form starting at now.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.Format(StartTimeInputLayout)}
}

// Validate returns the field errors of f, or nil if it is valid.
func (f ShowForm) Validate() Errors {
	return validateStruct(f)
}

// Show maps a valid form onto a show. Start times without a zone are read in loc.
func (f ShowForm) Show(loc *time.Location) (db.Show, error) {
	artistID, err := strconv.Atoi(f.ArtistID)
	if err != nil {
		return db.Show{}, fmt.Errorf("parsing artist_id: %w", err)
	}
	venueID, err := strconv.Atoi(f.VenueID)
	if err != nil {
		return db.Show{}, fmt.Errorf("parsing venue_id: %w", err)
	}
	start, err := ParseStartTime(f.StartTime, loc)
	if err != nil {
		return db.Show{}, err
	}
	return db.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}
