package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/justestif/fyyur/internal/db"
	"github.com/justestif/fyyur/internal/forms"
	"github.com/justestif/fyyur/internal/listing"
	"github.com/justestif/fyyur/internal/logging"
)

// Venues lists all venues grouped by city and state (GET /venues).
func (h *Handlers) Venues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	venues, err := h.store.Venues().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	shows, err := h.store.Shows().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "venues", VenuesPageData{
		PageData: h.pageData(w, r, "Venues"),
		Areas:    listing.VenueAreas(venues, listing.Shows(shows), h.now()),
	})
}

// SearchVenues handles the venue search form (POST /venues/search).
func (h *Handlers) SearchVenues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	term := strings.TrimSpace(r.PostFormValue("search_term"))

	venues, err := h.store.Venues().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	shows, err := h.store.Shows().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "venue_search", SearchPageData{
		PageData: h.pageData(w, r, "Search Venues"),
		Kind:     "venues",
		Results:  listing.SearchVenues(venues, listing.Shows(shows), term, h.now()),
	})
}

// Venue shows a single venue with its upcoming and past shows (GET /venues/{id}).
func (h *Handlers) Venue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	ctx := r.Context()

	venue, err := h.store.Venues().Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	shows, err := h.store.Shows().ListForVenue(ctx, id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "venue", VenuePageData{
		PageData: h.pageData(w, r, venue.Name),
		Venue:    listing.BuildVenueDetail(*venue, shows, h.now()),
	})
}

// NewVenue renders the empty venue form (GET /venues/create).
func (h *Handlers) NewVenue(w http.ResponseWriter, r *http.Request) {
	h.renderVenueForm(w, r, http.StatusOK, 0, forms.VenueForm{}, nil, nil)
}

// CreateVenue inserts a venue from the submitted form (POST /venues/create).
func (h *Handlers) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderVenueForm(w, r, http.StatusBadRequest, 0, forms.VenueForm{}, nil, nil)
		return
	}
	form := forms.DecodeVenue(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		flash := errorFlash(fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		h.renderVenueForm(w, r, http.StatusUnprocessableEntity, 0, form, errs, &flash)
		return
	}

	venue := form.Venue(0)
	err := h.store.Venues().Create(r.Context(), &venue)
	h.metrics.recordWrite("venue", "create", err)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("venue", venue.Name).Msg("creating venue")
		redirect(w, r, "/", errorFlash(fmt.Sprintf("An error occurred. Venue %s could not be listed.", venue.Name)))
		return
	}

	logging.Ctx(r.Context()).Info().Int("venue_id", venue.ID).Msg("venue created")
	redirect(w, r, "/", successFlash(fmt.Sprintf("Venue %s was successfully listed!", venue.Name)))
}

// EditVenue renders the venue form prefilled with the stored venue (GET /venues/{id}/edit).
func (h *Handlers) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.store.Venues().Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderVenueForm(w, r, http.StatusOK, id, forms.VenueFormFrom(*venue), nil, nil)
}

// UpdateVenue replaces a venue's fields from the submitted form (POST /venues/{id}/edit).
func (h *Handlers) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderVenueForm(w, r, http.StatusBadRequest, id, forms.VenueForm{}, nil, nil)
		return
	}
	form := forms.DecodeVenue(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		flash := errorFlash(fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		h.renderVenueForm(w, r, http.StatusUnprocessableEntity, id, form, errs, &flash)
		return
	}

	venue := form.Venue(id)
	err := h.store.Venues().Update(r.Context(), &venue)
	h.metrics.recordWrite("venue", "update", err)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/venues/%d", id)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Int("venue_id", id).Msg("updating venue")
		redirect(w, r, target, errorFlash(fmt.Sprintf("An error occurred. Venue %s could not be updated.", venue.Name)))
		return
	}

	redirect(w, r, target, successFlash(fmt.Sprintf("Venue %s is updated successfully!", venue.Name)))
}

// DeleteVenue removes a venue (DELETE /venues/{id} and POST /venues/{id}/delete).
// Missing venues and venues that still have shows are reported through the flash.
func (h *Handlers) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		redirect(w, r, "/", errorFlash("An error occurred. Venue could not be deleted."))
		return
	}

	err := h.store.Venues().Delete(r.Context(), id)
	h.metrics.recordWrite("venue", "delete", err)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Int("venue_id", id).Msg("deleting venue")
		redirect(w, r, "/", errorFlash("An error occurred. Venue could not be deleted."))
		return
	}

	redirect(w, r, "/", successFlash("Venue was successfully deleted."))
}

func (h *Handlers) renderVenueForm(w http.ResponseWriter, r *http.Request, status, id int, form forms.VenueForm, errs forms.Errors, flash *FlashMessage) {
	title, action := "New Venue", "/venues/create"
	if id > 0 {
		title, action = "Edit Venue", fmt.Sprintf("/venues/%d/edit", id)
	}

	page := h.pageData(w, r, title)
	if flash != nil {
		page.Flash = flash
	}

	h.render(w, r, status, "venue_form", VenueFormPageData{
		PageData:    page,
		FormChoices: formChoices,
		Action:      action,
		VenueID:     id,
		Form:        form,
		Errors:      errs,
	})
}
