package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/platform/icons"
	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
)

// Nav renders the sticky header with section anchors and the theme toggle.
func Nav(name string, theme uistate.Theme, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<header class="nav"><div class="container nav-inner"><div class="brand">`)
		hw.text(name)
		hw.raw(`</div><nav class="nav-links">`)
		for _, link := range []struct{ section, key string }{
			{routepath.SectionProjects, "portfolio.nav.projects"},
			{routepath.SectionAbout, "portfolio.nav.about"},
			{routepath.SectionContact, "portfolio.nav.contact"},
		} {
			hw.raw("<a")
			hw.attr("href", routepath.Anchor(link.section))
			hw.raw(">")
			hw.text(T(loc, link.key))
			hw.raw("</a>")
		}
		hw.component(ctx, ThemeToggle(theme, loc))
		hw.raw("</nav></div></header>")
		return hw.err
	})
}

// ThemeToggle renders the theme switch as a form so it works without
// scripts; with HTMX it swaps the page root in place.
func ThemeToggle(theme uistate.Theme, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		icon, label, aria := themeToggleKeys(theme)
		hw := newHTMLWriter(w)
		hw.open("form",
			"method", "post",
			"class", "theme-toggle",
			"action", routepath.Theme,
			"hx-post", routepath.Theme,
			"hx-target", "#"+PageRootID,
			"hx-swap", "outerHTML",
		)
		hw.open("button", "type", "submit", "class", "button", "aria-label", T(loc, aria))
		hw.component(ctx, Icon(icon, 16))
		hw.raw("<span>")
		hw.text(T(loc, label))
		hw.raw("</span></button></form>")
		return hw.err
	})
}

// Hero renders the headline, pitch, calls to action, highlights and snapshot.
func Hero(profile content.Profile, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="hero"><div class="container hero-grid"><div class="hero-copy">`)
		hw.raw(`<h1>`)
		hw.text(profile.Headline)
		hw.raw(`<span class="tagline">`)
		hw.text(profile.Tagline)
		hw.raw(`</span></h1><p class="pitch">`)
		hw.text(profile.Pitch)
		hw.raw(`</p><div class="actions"><a class="button primary"`)
		hw.attr("href", routepath.Anchor(routepath.SectionProjects))
		hw.raw(">")
		hw.component(ctx, Icon(icons.Rocket, 16))
		hw.text(T(loc, "portfolio.hero.see_projects"))
		hw.raw(`</a><a class="button"`)
		hw.attr("href", routepath.Anchor(routepath.SectionContact))
		hw.raw(">")
		hw.component(ctx, Icon(icons.Mail, 16))
		hw.text(T(loc, "portfolio.hero.contact"))
		hw.raw(`</a></div>`)
		if len(profile.Highlights) > 0 {
			hw.raw(`<ul class="highlights">`)
			for _, highlight := range profile.Highlights {
				hw.raw("<li>")
				hw.component(ctx, Icon(highlight.Icon, 16))
				hw.text(highlight.Label)
				hw.raw("</li>")
			}
			hw.raw("</ul>")
		}
		hw.raw(`</div><div class="hero-side">`)
		hw.component(ctx, Avatar(profile))
		hw.component(ctx, Snapshot(profile.Snapshot, loc))
		hw.raw(`</div></div></section>`)
		return hw.err
	})
}

// Avatar renders the profile image, or initials when there is none.
func Avatar(profile content.Profile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		if profile.ImagePath != "" {
			hw.raw(`<img class="avatar"`)
			hw.attr("src", profile.ImagePath)
			hw.attr("alt", profile.Name)
			hw.raw(">")
			return hw.err
		}
		hw.raw(`<div class="avatar avatar-initials" role="img"`)
		hw.attr("aria-label", profile.Name)
		hw.raw(">")
		hw.text(Initials(profile.Name))
		hw.raw("</div>")
		return hw.err
	})
}

// Snapshot renders the headline numbers grid.
func Snapshot(stats []content.Stat, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(stats) == 0 {
			return nil
		}
		hw := newHTMLWriter(w)
		hw.raw(`<div class="snapshot card"><div class="eyebrow">`)
		hw.text(T(loc, "portfolio.snapshot.title"))
		hw.raw(`</div><div class="stats">`)
		for _, stat := range stats {
			hw.raw("<div")
			hw.attr("class", "stat tone-"+stat.Tone)
			hw.raw(`><div class="stat-value">`)
			hw.text(stat.Value)
			hw.raw(`</div><div class="stat-label">`)
			hw.text(stat.Label)
			hw.raw("</div></div>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

// Projects renders one card per catalog record, in catalog order.
func Projects(catalog *project.Catalog, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<section")
		hw.attr("id", routepath.SectionProjects)
		hw.raw(` class="section"><div class="container"><h2>`)
		hw.component(ctx, Icon(icons.Rocket, 24))
		hw.text(T(loc, "portfolio.projects.title"))
		hw.raw(`</h2><div class="grid">`)
		for _, record := range catalog.All() {
			hw.component(ctx, Card(record, catalog.SlugOf(record), loc))
		}
		hw.raw("</div></div></section>")
		return hw.err
	})
}

// About renders the biography paragraphs.
func About(profile content.Profile, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<section")
		hw.attr("id", routepath.SectionAbout)
		hw.raw(` class="section alt"><div class="container"><h2>`)
		hw.component(ctx, Icon(icons.Award, 24))
		hw.text(T(loc, "portfolio.about.title"))
		hw.raw(`</h2><div class="prose">`)
		for _, paragraph := range profile.About {
			hw.raw("<p>")
			hw.text(paragraph)
			hw.raw("</p>")
		}
		hw.raw("</div></div></section>")
		return hw.err
	})
}

// Contact renders the contact links.
func Contact(profile content.Profile, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<section")
		hw.attr("id", routepath.SectionContact)
		hw.raw(` class="section"><div class="container"><h2>`)
		hw.component(ctx, Icon(icons.Mail, 24))
		hw.text(T(loc, "portfolio.contact.title"))
		hw.raw(`</h2><div class="contacts">`)
		for _, link := range profile.Contacts {
			hw.raw(`<a class="button"`)
			hw.attr("href", link.Href)
			if link.External {
				hw.raw(` target="_blank" rel="noopener noreferrer"`)
			}
			hw.raw(">")
			hw.component(ctx, Icon(link.Icon, 16))
			hw.text(link.Label)
			hw.raw("</a>")
		}
		hw.raw("</div></div></section>")
		return hw.err
	})
}

// Footer renders the copyright line for year.
func Footer(name string, year int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<footer class="footer"><div class="container">`)
		hw.text(T(loc, "core.footer", strconv.Itoa(year), name))
		hw.raw("</div></footer>")
		return hw.err
	})
}
