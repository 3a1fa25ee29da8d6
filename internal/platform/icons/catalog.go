package icons

import "strings"

// Icon identifiers referenced by page content.
const (
	Award        = "award"
	Star         = "star"
	Mail         = "mail"
	Phone        = "phone"
	LinkedIn     = "linkedin"
	Sun          = "sun"
	Moon         = "moon"
	Close        = "x"
	Rocket       = "rocket"
	Sparkles     = "sparkles"
	ExternalLink = "external-link"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          string
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Award, Name: "Award", Description: "Recognition badges in the hero."},
	{ID: Star, Name: "Star", Description: "Patents and featured highlights."},
	{ID: Mail, Name: "Mail", Description: "Email contact link."},
	{ID: Phone, Name: "Phone", Description: "Phone contact link."},
	{ID: LinkedIn, Name: "LinkedIn", Description: "Professional profile link."},
	{ID: Sun, Name: "Sun", Description: "Switch to the light theme."},
	{ID: Moon, Name: "Moon", Description: "Switch to the dark theme."},
	{ID: Close, Name: "Close", Description: "Dismiss the project details dialog."},
	{ID: Rocket, Name: "Rocket", Description: "Call to action toward the project list."},
	{ID: Sparkles, Name: "Sparkles", Description: "Featured project marker."},
	{ID: ExternalLink, Name: "External Link", Description: "Links that open a new tab."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Known reports whether id is in the catalog.
func Known(id string) bool {
	for _, def := range catalog {
		if def.ID == id {
			return true
		}
	}
	return false
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.ID)
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
