package forms

import (
	"net/url"

	"github.com/justestif/fyyur/internal/db"
)

// VenueForm is the create and edit form for venues.
type VenueForm struct {
	Name               string   `form:"name"                validate:"required,max=120"`
	Genres             []string `form:"genres"              validate:"min=1,dive,genre"`
	City               string   `form:"city"                validate:"required,max=120"`
	State              string   `form:"state"               validate:"required,usstate"`
	Address            string   `form:"address"             validate:"required,max=120"`
	Phone              string   `form:"phone"               validate:"omitempty,phone"`
	Website            string   `form:"website"             validate:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link"          validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link"       validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// DecodeVenue reads a venue form from submitted values.
func DecodeVenue(values url.Values) VenueForm {
	return VenueForm{
		Name:               field(values, "name"),
		Genres:             genres(values),
		City:               field(values, "city"),
		State:              field(values, "state"),
		Address:            field(values, "address"),
		Phone:              field(values, "phone"),
		Website:            field(values, "website"),
		ImageLink:          field(values, "image_link"),
		FacebookLink:       field(values, "facebook_link"),
		SeekingTalent:      present(values, "seeking_talent"),
		SeekingDescription: field(values, "seeking_description"),
	}
}

// VenueFormFrom prefills the edit form from a stored venue.
func VenueFormFrom(v db.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		Genres:             v.Genres,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Website:            v.Website,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// Validate returns the field errors of f, or nil if it is valid.
func (f VenueForm) Validate() Errors {
	return validateStruct(f)
}

// Venue maps the form onto a venue with the given ID.
func (f VenueForm) Venue(id int) db.Venue {
	return db.Venue{
		ID:                 id,
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}
