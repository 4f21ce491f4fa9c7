package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/justestif/fyyur/internal/forms"
	"github.com/justestif/fyyur/internal/listing"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("executing template %q: %w", page, err)
	}
	return nil
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}
	if len(pages) == 0 {
		return errors.New("no page templates found")
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	return nil
}

// datetime layouts, keyed by the format name used in templates.
var datetimeLayouts = map[string]string{
	"full":   "Monday January, 2 2006 at 3:04PM",
	"medium": "Mon 01, 02, 2006 3:04PM",
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// datetime formats a time as "full" or "medium" (the default).
		"datetime": func(t time.Time, format string) string {
			layout, ok := datetimeLayouts[format]
			if !ok {
				layout = datetimeLayouts["medium"]
			}
			return t.Format(layout)
		},

		"join": strings.Join,

		// contains reports whether s is one of values (for multi-select state).
		"contains": func(values []string, s string) bool {
			return slices.Contains(values, s)
		},

		// dict builds a map from alternating keys and values for partials.
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict expects key/value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	Flash       *FlashMessage
	CurrentPath string
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	RecentVenues  []listing.Summary
	RecentArtists []listing.Summary
}

// VenuesPageData contains data for the grouped venue listing.
type VenuesPageData struct {
	PageData
	Areas []listing.Area
}

// VenuePageData contains data for a single venue page.
type VenuePageData struct {
	PageData
	Venue listing.VenueDetail
}

// ArtistsPageData contains data for the artist listing.
type ArtistsPageData struct {
	PageData
	Artists []listing.Summary
}

// ArtistPageData contains data for a single artist page.
type ArtistPageData struct {
	PageData
	Artist listing.ArtistDetail
}

// SearchPageData contains data for the venue and artist search pages.
type SearchPageData struct {
	PageData
	Kind    string // "venues" or "artists"
	Results listing.SearchResult
}

// ShowsPageData contains data for the all-shows page.
type ShowsPageData struct {
	PageData
	Shows []listing.ShowRow
}

// FormChoices holds the option lists of the venue and artist forms.
type FormChoices struct {
	Genres []string
	States []string
}

var formChoices = FormChoices{Genres: forms.Genres, States: forms.States}

// VenueFormPageData contains data for the new and edit venue forms.
type VenueFormPageData struct {
	PageData
	FormChoices
	Action  string
	VenueID int // zero when creating
	Form    forms.VenueForm
	Errors  forms.Errors
}

// ArtistFormPageData contains data for the new and edit artist forms.
type ArtistFormPageData struct {
	PageData
	FormChoices
	Action   string
	ArtistID int // zero when creating
	Form     forms.ArtistForm
	Errors   forms.Errors
}

// ShowFormPageData contains data for the new show form.
type ShowFormPageData struct {
	PageData
	Form    forms.ShowForm
	Errors  forms.Errors
	Artists []listing.Summary
	Venues  []listing.Summary
}
