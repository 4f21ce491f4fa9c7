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

// Artists lists all artists (GET /artists).
func (h *Handlers) Artists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.store.Artists().List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "artists", ArtistsPageData{
		PageData: h.pageData(w, r, "Artists"),
		Artists:  listing.ArtistList(artists),
	})
}

// SearchArtists handles the artist search form (POST /artists/search).
func (h *Handlers) SearchArtists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	term := strings.TrimSpace(r.PostFormValue("search_term"))

	artists, err := h.store.Artists().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	shows, err := h.store.Shows().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "artist_search", SearchPageData{
		PageData: h.pageData(w, r, "Search Artists"),
		Kind:     "artists",
		Results:  listing.SearchArtists(artists, listing.Shows(shows), term, h.now()),
	})
}

// Artist shows a single artist with their upcoming and past shows (GET /artists/{id}).
func (h *Handlers) Artist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	ctx := r.Context()

	artist, err := h.store.Artists().Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	shows, err := h.store.Shows().ListForArtist(ctx, id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "artist", ArtistPageData{
		PageData: h.pageData(w, r, artist.Name),
		Artist:   listing.BuildArtistDetail(*artist, shows, h.now()),
	})
}

// NewArtist renders the empty artist form (GET /artists/create).
func (h *Handlers) NewArtist(w http.ResponseWriter, r *http.Request) {
	h.renderArtistForm(w, r, http.StatusOK, 0, forms.ArtistForm{}, nil, nil)
}

// CreateArtist inserts an artist from the submitted form (POST /artists/create).
func (h *Handlers) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderArtistForm(w, r, http.StatusBadRequest, 0, forms.ArtistForm{}, nil, nil)
		return
	}
	form := forms.DecodeArtist(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		flash := errorFlash(fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		h.renderArtistForm(w, r, http.StatusUnprocessableEntity, 0, form, errs, &flash)
		return
	}

	artist := form.Artist(0)
	err := h.store.Artists().Create(r.Context(), &artist)
	h.metrics.recordWrite("artist", "create", err)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("artist", artist.Name).Msg("creating artist")
		redirect(w, r, "/", errorFlash(fmt.Sprintf("An error occurred. Artist %s could not be listed.", artist.Name)))
		return
	}

	logging.Ctx(r.Context()).Info().Int("artist_id", artist.ID).Msg("artist created")
	redirect(w, r, "/", successFlash(fmt.Sprintf("Artist %s was successfully listed!", artist.Name)))
}

// EditArtist renders the artist form prefilled with the stored artist (GET /artists/{id}/edit).
func (h *Handlers) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.store.Artists().Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderArtistForm(w, r, http.StatusOK, id, forms.ArtistFormFrom(*artist), nil, nil)
}

// UpdateArtist replaces an artist's fields from the submitted form (POST /artists/{id}/edit).
func (h *Handlers) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderArtistForm(w, r, http.StatusBadRequest, id, forms.ArtistForm{}, nil, nil)
		return
	}
	form := forms.DecodeArtist(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		flash := errorFlash(fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		h.renderArtistForm(w, r, http.StatusUnprocessableEntity, id, form, errs, &flash)
		return
	}

	artist := form.Artist(id)
	err := h.store.Artists().Update(r.Context(), &artist)
	h.metrics.recordWrite("artist", "update", err)
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/artists/%d", id)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Int("artist_id", id).Msg("updating artist")
		redirect(w, r, target, errorFlash(fmt.Sprintf("An error occurred. Artist %s could not be updated.", artist.Name)))
		return
	}

	redirect(w, r, target, successFlash(fmt.Sprintf("Artist %s is updated successfully!", artist.Name)))
}

// DeleteArtist removes an artist (DELETE /artists/{id} and POST /artists/{id}/delete).
func (h *Handlers) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		redirect(w, r, "/", errorFlash("An error occurred. Artist could not be deleted."))
		return
	}

	err := h.store.Artists().Delete(r.Context(), id)
	h.metrics.recordWrite("artist", "delete", err)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Int("artist_id", id).Msg("deleting artist")
		redirect(w, r, "/", errorFlash("An error occurred. Artist could not be deleted."))
		return
	}

	redirect(w, r, "/", successFlash("Artist was successfully deleted."))
}

func (h *Handlers) renderArtistForm(w http.ResponseWriter, r *http.Request, status, id int, form forms.ArtistForm, errs forms.Errors, flash *FlashMessage) {
	title, action := "New Artist", "/artists/create"
	if id > 0 {
		title, action = "Edit Artist", fmt.Sprintf("/artists/%d/edit", id)
	}

	page := h.pageData(w, r, title)
	if flash != nil {
		page.Flash = flash
	}

	h.render(w, r, status, "artist_form", ArtistFormPageData{
		PageData:    page,
		FormChoices: formChoices,
		Action:      action,
		ArtistID:    id,
		Form:        form,
		Errors:      errs,
	})
}
