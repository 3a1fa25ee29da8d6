// Package uistate holds the ephemeral UI state of one viewer: which project
// is open in detail and which theme is active.
//
// Selection and theme are independent axes. A Controller has a single owner
// and is not safe for concurrent use; callers that share one across
// goroutines must serialise access themselves.
package uistate

import (
	"fmt"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
)

// Theme is the active color theme.
type Theme string

const (
	// ThemeDark is the initial theme.
	ThemeDark Theme = "dark"
	// ThemeLight is the alternate theme.
	ThemeLight Theme = "light"
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// State is a snapshot of the controller.
type State struct {
	// Selected points into the catalog, or is nil when nothing is selected.
	Selected *project.Record
	Theme    Theme
}

// Selecting reports whether a project is selected.
func (s State) Selecting() bool {
	return s.Selected != nil
}

// Controller owns the selection and theme for one viewer.
type Controller struct {
	catalog  *project.Catalog
	selected *project.Record
	theme    Theme
}

// NewController returns a controller with nothing selected and the dark theme.
func NewController(catalog *project.Catalog) *Controller {
	return &Controller{catalog: catalog, theme: ThemeDark}
}

// Select makes record the selected project, replacing any prior selection.
// record must belong to the controller's catalog; anything else is a
// programming error and panics.
func (c *Controller) Select(record *project.Record) {
	if !c.catalog.Contains(record) {
		title := "<nil>"
		if record != nil {
			title = record.Title
		}
		panic(fmt.Sprintf("uistate: select %q: record is not in the catalog", title))
	}
	c.selected = record
}

// ClearSelection deselects the current project. It is a no-op when nothing
// is selected.
func (c *Controller) ClearSelection() {
	if c == nil {
		return
	}
	c.selected = nil
}

// ToggleTheme flips between dark and light.
func (c *Controller) ToggleTheme() {
	if c == nil {
		return
	}
	c.theme = c.theme.Toggled()
}

// State returns the current selection and theme.
func (c *Controller) State() State {
	if c == nil {
		return State{Theme: ThemeDark}
	}
	return State{Selected: c.selected, Theme: c.theme}
}
