// Package i18n resolves the request language and localizer for page rendering.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pbhende/portfolio/internal/platform/i18n/catalog"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var matcher = newMatcher(catalog.Default())

func newMatcher(bundle *catalog.Bundle) language.Matcher {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range bundle.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	return language.NewMatcher(tags)
}

// ResolveLanguage picks the best supported locale from Accept-Language.
func ResolveLanguage(r *http.Request) string {
	if r == nil {
		return catalog.BaseLocale
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return catalog.BaseLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return catalog.BaseLocale
	}
	locales := supportedLocales()
	if index < 0 || index >= len(locales) {
		return catalog.BaseLocale
	}
	return locales[index]
}

func supportedLocales() []string {
	out := []string{catalog.BaseLocale}
	for _, locale := range catalog.Default().Locales() {
		if locale != catalog.BaseLocale {
			out = append(out, locale)
		}
	}
	return out
}

// ResolveLocalizer returns a localizer and locale for the request.
func ResolveLocalizer(r *http.Request) (Localizer, string) {
	locale := ResolveLanguage(r)
	return catalog.Default().Printer(locale), locale
}
