package web

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/justestif/fyyur/internal/listing"
	"github.com/justestif/fyyur/internal/logging"
)

// recentLimit is the number of venues and artists listed on the home page.
const recentLimit = 10

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	store     Store
	templates *Templates
	metrics   *Metrics
	now       func() time.Time
	loc       *time.Location
}

// NewHandlers creates a new Handlers instance. A nil now defaults to
// time.Now and a nil loc to time.Local.
func NewHandlers(store Store, templates *Templates, metrics *Metrics, now func() time.Time, loc *time.Location) *Handlers {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Handlers{
		store:     store,
		templates: templates,
		metrics:   metrics,
		now:       now,
		loc:       loc,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	venues, err := h.store.Venues().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	artists, err := h.store.Artists().List(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "home", HomePageData{
		PageData:      h.pageData(w, r, "Fyyur"),
		RecentVenues:  listing.Recent(listing.VenueList(venues), recentLimit),
		RecentArtists: listing.Recent(listing.ArtistList(artists), recentLimit),
	})
}

// Healthz reports whether the database is reachable (GET /healthz).
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable\n"))
		return
	}
	_, _ = w.Write([]byte("ok\n"))
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", h.pageData(w, r, "Not Found"))
}

// MethodNotAllowed answers requests whose path exists under another method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// serverError logs err and renders the 500 page.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	h.renderServerError(w, r)
}

// renderServerError renders the 500 page, falling back to plain text.
func (h *Handlers) renderServerError(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	data := PageData{Title: "Server Error", CurrentPath: r.URL.Path}
	if err := h.templates.Render(&buf, "server_error", data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

// render writes page with status, or the 500 page if the template fails.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, page, data); err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// pageData builds the common page data and consumes any pending flash.
func (h *Handlers) pageData(w http.ResponseWriter, r *http.Request, title string) PageData {
	return PageData{
		Title:       title,
		Flash:       popFlash(w, r),
		CurrentPath: r.URL.Path,
	}
}

// redirect stores flash and sends a 303 to target.
func redirect(w http.ResponseWriter, r *http.Request, target string, flash FlashMessage) {
	setFlash(w, flash)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// idParam parses the {id} route parameter. Non-positive and malformed IDs
// are reported as absent.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
