package portfolio

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/platform/requestctx"
	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
	"github.com/pbhende/portfolio/internal/services/portfolio/metrics"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/i18n"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/requestmeta"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/sessioncookie"
	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
	"github.com/pbhende/portfolio/internal/services/portfolio/session"
	"github.com/pbhende/portfolio/internal/services/portfolio/templates"
)

type handlers struct {
	catalog  *project.Catalog
	profile  content.Profile
	report   integrity.Report
	sessions *session.Store
	metrics  *metrics.Metrics
	policy   requestmeta.SchemePolicy
	now      func() time.Time
}

type integrityResponse struct {
	Passed  bool               `json:"passed"`
	Results []integrity.Result `json:"results"`
}

// defaultState is what a visitor without a session sees.
func defaultState() uistate.State {
	return uistate.State{Theme: uistate.ThemeDark}
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	state, stale := h.visitorState(r)
	if stale {
		sessioncookie.ClearWithPolicy(w, r, h.policy)
	}
	h.render(w, r, http.StatusOK, templates.Page(h.page(r, state)))
}

// openProject shows a project. Only a same-origin request stores the
// selection; any other request renders it without creating or changing a
// session.
func (h *handlers) openProject(w http.ResponseWriter, r *http.Request) {
	record, ok := h.catalog.BySlug(r.PathValue("slug"))
	if !ok {
		h.notFound(w, r)
		return
	}
	var state uistate.State
	if requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		state, ok = h.apply(w, r, metrics.EventSelect, func(controller *uistate.Controller) {
			controller.Select(record)
		})
		if !ok {
			return
		}
	} else {
		state, _ = h.visitorState(r)
		state.Selected = record
	}
	if httpx.IsHTMXRequest(r) {
		loc, _ := i18n.ResolveLocalizer(r)
		h.render(w, r, http.StatusOK, templates.Modal(record, loc))
		return
	}
	h.render(w, r, http.StatusOK, templates.Page(h.page(r, state)))
}

func (h *handlers) closeProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.apply(w, r, metrics.EventClear, func(controller *uistate.Controller) {
		controller.ClearSelection()
	}); !ok {
		return
	}
	if httpx.IsHTMXRequest(r) {
		_ = httpx.WriteHTML(w, http.StatusOK, "")
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h *handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	state, ok := h.apply(w, r, metrics.EventToggleTheme, func(controller *uistate.Controller) {
		controller.ToggleTheme()
	})
	if !ok {
		return
	}
	if httpx.IsHTMXRequest(r) {
		h.render(w, r, http.StatusOK, templates.Root(h.page(r, state)))
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h *handlers) integrityReport(w http.ResponseWriter, _ *http.Request) {
	results := h.report.Results
	if results == nil {
		results = []integrity.Result{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, integrityResponse{
		Passed:  h.report.Passed(),
		Results: results,
	})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// visitorState returns the session's state, or the default state when the
// request has no live session. stale reports a cookie naming no live session.
func (h *handlers) visitorState(r *http.Request) (state uistate.State, stale bool) {
	sessionID := requestctx.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return defaultState(), false
	}
	if current, found := h.sessions.Peek(sessionID); found {
		return current, false
	}
	return defaultState(), true
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound)
}

// apply runs one transition against the visitor's session and refreshes the
// session cookie. It reports false after writing an error response.
func (h *handlers) apply(w http.ResponseWriter, r *http.Request, event string, transition func(*uistate.Controller)) (uistate.State, bool) {
	var state uistate.State
	sessionID, err := h.sessions.With(requestctx.SessionIDFromContext(r.Context()), func(controller *uistate.Controller) {
		transition(controller)
		state = controller.State()
	})
	if err != nil {
		log.Printf("session transition failed event=%s err=%v", event, err)
		h.renderError(w, r, http.StatusInternalServerError)
		return uistate.State{}, false
	}
	h.metrics.RecordTransition(event)
	sessioncookie.WriteWithPolicy(w, r, sessionID, h.sessions.IdleTimeout(), h.policy)
	return state, true
}

func (h *handlers) page(r *http.Request, state uistate.State) templates.PageContext {
	loc, lang := i18n.ResolveLocalizer(r)
	return templates.PageContext{
		Lang:    lang,
		Loc:     loc,
		Profile: h.profile,
		Catalog: h.catalog,
		State:   state,
		Year:    h.now().Year(),
	}
}

// render buffers the component so a render failure can still become a 500.
func (h *handlers) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		log.Printf("render failed path=%s err=%v", r.URL.Path, err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.String())
}

func (h *handlers) renderError(w http.ResponseWriter, r *http.Request, status int) {
	loc, lang := i18n.ResolveLocalizer(r)
	var buf bytes.Buffer
	if err := templates.ErrorPage(status, lang, loc).Render(httpx.RequestContext(r), &buf); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.String())
}
