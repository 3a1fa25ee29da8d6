package templates

import (
	"strings"
	"unicode"

	"github.com/pbhende/portfolio/internal/platform/icons"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
)

// Card limits: the card is a preview, the modal shows everything.
const (
	cardTechLimit    = 6
	cardImpactLimit  = 3
	cardMetricsLimit = 4
)

// CardView is the truncated slice of a record shown on its card.
type CardView struct {
	Tech        []string
	Impact      []string
	Metrics     []string
	MoreMetrics int
}

// NewCardView truncates record lists for card display.
func NewCardView(record *project.Record) CardView {
	if record == nil {
		return CardView{}
	}
	view := CardView{
		Tech:    head(record.Tech, cardTechLimit),
		Impact:  head(record.Impact, cardImpactLimit),
		Metrics: head(record.Metrics, cardMetricsLimit),
	}
	if extra := len(record.Metrics) - cardMetricsLimit; extra > 0 {
		view.MoreMetrics = extra
	}
	return view
}

func head(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}

// ThemeClass returns the class carried by the page root for theme.
func ThemeClass(theme uistate.Theme) string {
	return "theme-" + theme.String()
}

// themeToggleKeys returns the label and accessible name for the toggle. The
// toggle names the theme it switches to.
func themeToggleKeys(theme uistate.Theme) (icon string, label string, aria string) {
	if theme == uistate.ThemeLight {
		return icons.Moon, "core.theme.dark", "core.theme.switch_dark"
	}
	return icons.Sun, "core.theme.light", "core.theme.switch_light"
}

// Initials returns up to two uppercase initials for name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
