package forms

import (
	"net/url"

	"github.com/justestif/fyyur/internal/db"
)

// ArtistForm is the create and edit form for artists.
type ArtistForm struct {
	Name               string   `form:"name"                validate:"required,max=120"`
	City               string   `form:"city"                validate:"required,max=120"`
	State              string   `form:"state"               validate:"required,usstate"`
	Phone              string   `form:"phone"               validate:"omitempty,phone"`
	Website            string   `form:"website"             validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres"              validate:"min=1,dive,genre"`
	ImageLink          string   `form:"image_link"          validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link"       validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// DecodeArtist reads an artist form from submitted values.
func DecodeArtist(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               field(values, "name"),
		City:               field(values, "city"),
		State:              field(values, "state"),
		Phone:              field(values, "phone"),
		Website:            field(values, "website"),
		Genres:             genres(values),
		ImageLink:          field(values, "image_link"),
		FacebookLink:       field(values, "facebook_link"),
		SeekingVenue:       present(values, "seeking_venue"),
		SeekingDescription: field(values, "seeking_description"),
	}
}

// ArtistFormFrom prefills the edit form from a stored artist.
func ArtistFormFrom(a db.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// Validate returns the field errors of f, or nil if it is valid.
func (f ArtistForm) Validate() Errors {
	return validateStruct(f)
}

// Artist maps the form onto an artist with the given ID.
func (f ArtistForm) Artist(id int) db.Artist {
	return db.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}
