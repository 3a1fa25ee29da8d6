package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/platform/icons"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
)

// Card renders a record's preview linking to its route slug. Following the
// link selects the record.
func Card(record *project.Record, slug string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if record == nil {
			return nil
		}
		view := NewCardView(record)
		href := routepath.Project(slug)

		hw := newHTMLWriter(w)
		hw.raw(`<a class="card project-card"`)
		hw.attr("href", href)
		hw.attr("hx-get", href)
		hw.attr("hx-target", "#"+ModalMountID)
		hw.raw(` hx-swap="innerHTML"`)
		hw.attr("aria-label", T(loc, "portfolio.projects.open", record.Title))
		hw.raw(`><div class="card-head"><h3>`)
		hw.text(record.Title)
		hw.raw("</h3>")
		if record.Featured {
			hw.raw(`<span class="featured">`)
			hw.component(ctx, Icon(icons.Star, 16))
			hw.text(T(loc, "portfolio.projects.featured"))
			hw.raw("</span>")
		}
		hw.raw("</div>")
		if record.Subtitle != "" {
			hw.raw(`<p class="subtitle">`)
			hw.text(record.Subtitle)
			hw.raw("</p>")
		}
		writeBadges(hw, "badges", "badge", view.Tech)
		writeBadges(hw, "metrics", "metric", view.Impact)
		if len(view.Metrics) > 0 {
			hw.raw(`<div class="badges eval-metrics">`)
			for _, metric := range view.Metrics {
				hw.raw(`<span class="badge">`)
				hw.text(metric)
				hw.raw("</span>")
			}
			if view.MoreMetrics > 0 {
				hw.raw(`<span class="metric more">`)
				hw.text(T(loc, "portfolio.projects.more", view.MoreMetrics))
				hw.raw("</span>")
			}
			hw.raw("</div>")
		}
		hw.raw("</a>")
		return hw.err
	})
}

func writeBadges(hw *htmlWriter, listClass string, itemClass string, values []string) {
	if len(values) == 0 {
		return
	}
	hw.raw("<div")
	hw.attr("class", listClass)
	hw.raw(">")
	for _, value := range values {
		hw.raw("<span")
		hw.attr("class", itemClass)
		hw.raw(">")
		hw.text(value)
		hw.raw("</span>")
	}
	hw.raw("</div>")
}

// ModalMount renders the element the modal is swapped into, holding the
// modal for selected when there is one.
func ModalMount(selected *project.Record, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<div")
		hw.attr("id", ModalMountID)
		hw.raw(">")
		hw.component(ctx, Modal(selected, loc))
		hw.raw("</div>")
		return hw.err
	})
}

// Modal renders a record's details. A nil record renders nothing.
//
// Build text is escaped and its line breaks are kept as <br>.
func Modal(record *project.Record, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if record == nil {
			return nil
		}
		hw := newHTMLWriter(w)
		hw.raw(`<div class="modal" role="presentation">`)
		writeCloseForm(ctx, hw, closeButton{class: "modal-backdrop", tabIndex: "-1"}, loc)
		hw.raw(`<div class="modal-dialog" role="dialog" aria-modal="true" aria-labelledby="modal-title">`)
		hw.raw(`<div class="modal-head">`)
		writeCloseForm(ctx, hw, closeButton{class: "button modal-close", icon: true}, loc)
		hw.raw(`<h3 id="modal-title">`)
		hw.text(record.Title)
		hw.raw("</h3>")
		if record.Subtitle != "" {
			hw.raw(`<p class="subtitle">`)
			hw.text(record.Subtitle)
			hw.raw("</p>")
		}
		writeBadges(hw, "badges", "badge", record.Tech)
		hw.raw(`</div><div class="modal-body">`)

		writeDetail(hw, T(loc, "portfolio.modal.problem"), record.Problem)
		writeDetail(hw, T(loc, "portfolio.modal.importance"), record.Importance)

		hw.raw("<div><h4>")
		hw.text(T(loc, "portfolio.modal.build"))
		hw.raw(`</h4><p class="build">`)
		for i, line := range record.BuildLines() {
			if i > 0 {
				hw.raw("<br>")
			}
			hw.text(line)
		}
		hw.raw("</p></div>")

		if record.Extra != "" {
			writeDetail(hw, T(loc, "portfolio.modal.extra"), record.Extra)
		}
		hw.raw("</div></div></div>")
		return hw.err
	})
}

func writeDetail(hw *htmlWriter, heading string, body string) {
	hw.raw("<div><h4>")
	hw.text(heading)
	hw.raw("</h4><p>")
	hw.text(body)
	hw.raw("</p></div>")
}

// closeButton styles one of the modal's close controls.
type closeButton struct {
	class    string
	tabIndex string
	icon     bool
}

// writeCloseForm emits a form whose submit button clears the selection.
func writeCloseForm(ctx context.Context, hw *htmlWriter, button closeButton, loc Localizer) {
	hw.open("form",
		"method", "post",
		"action", routepath.ProjectsClose,
		"hx-post", routepath.ProjectsClose,
		"hx-target", "#"+ModalMountID,
		"hx-swap", "innerHTML",
	)
	attrs := []string{"type", "submit", "class", button.class}
	if button.tabIndex != "" {
		attrs = append(attrs, "tabindex", button.tabIndex)
	}
	attrs = append(attrs, "aria-label", T(loc, "core.close"))
	hw.open("button", attrs...)
	if button.icon {
		hw.component(ctx, Icon(icons.Close, 18))
	}
	hw.raw("</button></form>")
}
