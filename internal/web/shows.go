package web

import (
	"net/http"

	"github.com/justestif/fyyur/internal/forms"
	"github.com/justestif/fyyur/internal/listing"
	"github.com/justestif/fyyur/internal/logging"
)

// Shows lists every show (GET /shows).
func (h *Handlers) Shows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.store.Shows().List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "shows", ShowsPageData{
		PageData: h.pageData(w, r, "Shows"),
		Shows:    listing.AllShows(shows),
	})
}

// NewShow renders the show form (GET /shows/create).
func (h *Handlers) NewShow(w http.ResponseWriter, r *http.Request) {
	h.renderShowForm(w, r, http.StatusOK, forms.NewShowForm(h.now().In(h.loc)), nil, nil)
}

// CreateShow inserts a show from the submitted form (POST /shows/create).
// Unknown artist or venue IDs leave the store unchanged and are flashed as a failure.
func (h *Handlers) CreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderShowForm(w, r, http.StatusBadRequest, forms.ShowForm{}, nil, nil)
		return
	}
	form := forms.DecodeShow(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		flash := errorFlash("An error occurred. Show could not be listed.")
		h.renderShowForm(w, r, http.StatusUnprocessableEntity, form, errs, &flash)
		return
	}

	show, err := form.Show(h.loc)
	if err == nil {
		err = h.store.Shows().Create(r.Context(), &show)
	}
	h.metrics.recordWrite("show", "create", err)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).
			Int("artist_id", show.ArtistID).
			Int("venue_id", show.VenueID).
			Msg("creating show")
		redirect(w, r, "/", errorFlash("An error occurred. Show could not be listed."))
		return
	}

	logging.Ctx(r.Context()).Info().Int("show_id", show.ID).Msg("show created")
	redirect(w, r, "/", successFlash("Show was successfully listed"))
}

func (h *Handlers) renderShowForm(w http.ResponseWriter, r *http.Request, status int, form forms.ShowForm, errs forms.Errors, flash *FlashMessage) {
	ctx := r.Context()

	artists, err := h.store.Artists().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	venues, err := h.store.Venues().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.pageData(w, r, "New Show")
	if flash != nil {
		page.Flash = flash
	}

	h.render(w, r, status, "show_form", ShowFormPageData{
		PageData: page,
		Form:     form,
		Errors:   errs,
		Artists:  listing.ArtistList(artists),
		Venues:   listing.VenueList(venues),
	})
}
