// Package web provides the embedded templates and static assets of the Fyyur site.
package web

import "embed"

// TemplatesFS contains the embedded HTML templates, laid out as
// layouts/, partials/ and pages/.
//
//go:embed all:templates
var TemplatesFS embed.FS

// StaticFS contains the embedded static assets (CSS, JS).
//
//go:embed all:static
var StaticFS embed.FS
