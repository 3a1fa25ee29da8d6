// Package routepath defines the portfolio's URL paths.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	StaticPrefix = "/static/"
	Integrity    = "/integrity"
	Metrics      = "/metrics"
	Health       = "/up"
	Theme        = "/theme"
)

const (
	ProjectsPrefix = "/projects/"
	ProjectsClose  = "/projects/close"
)

// ServeMux patterns for the project routes. They are method-qualified so a
// project slugged "close" still resolves on GET.
const (
	ProjectPattern       = "GET " + ProjectsPrefix + "{slug}"
	ProjectsClosePattern = "POST " + ProjectsClose
)

// Anchors for in-page sections.
const (
	SectionProjects = "projects"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// Project returns the details path for a project slug.
func Project(slug string) string {
	return ProjectsPrefix + escapeSegment(slug)
}

// Anchor returns an in-page fragment link.
func Anchor(section string) string {
	return "#" + strings.TrimSpace(section)
}

// Static returns the path for an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
