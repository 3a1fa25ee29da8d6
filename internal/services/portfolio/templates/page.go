package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
)

// Element ids swapped by HTMX.
const (
	PageRootID   = "page"
	ModalMountID = "modal"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageContext is everything a full page render needs.
type PageContext struct {
	Lang    string
	Loc     Localizer
	Profile content.Profile
	Catalog *project.Catalog
	State   uistate.State
	Year    int
}

// Page renders the full document.
func Page(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<!DOCTYPE html><html")
		hw.attr("lang", page.Lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw("<title>")
		hw.text(T(page.Loc, "portfolio.title", page.Profile.Name))
		hw.raw("</title>")
		hw.raw(`<link rel="stylesheet"`)
		hw.attr("href", routepath.Static("portfolio.css"))
		hw.raw(`><script defer`)
		hw.attr("src", htmxScriptURL)
		hw.raw("></script></head><body>")
		hw.component(ctx, Root(page))
		hw.raw("</body></html>")
		return hw.err
	})
}

// Root renders the themed page body. The theme class lives here so a theme
// toggle can swap this element alone.
func Root(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<div")
		hw.attr("id", PageRootID)
		hw.attr("class", "page "+ThemeClass(page.State.Theme))
		hw.raw(">")
		hw.component(ctx, Nav(page.Profile.Name, page.State.Theme, page.Loc))
		hw.raw("<main>")
		hw.component(ctx, Hero(page.Profile, page.Loc))
		hw.component(ctx, Projects(page.Catalog, page.Loc))
		hw.component(ctx, About(page.Profile, page.Loc))
		hw.component(ctx, Contact(page.Profile, page.Loc))
		hw.raw("</main>")
		hw.component(ctx, Footer(page.Profile.Name, page.Year, page.Loc))
		hw.component(ctx, ModalMount(page.State.Selected, page.Loc))
		hw.raw("</div>")
		return hw.err
	})
}
