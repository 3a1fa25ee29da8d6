package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
)

// ErrorPage renders a minimal themed page for 404 and 5xx responses.
func ErrorPage(statusCode int, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		key := "core.error.internal"
		if statusCode == http.StatusNotFound {
			key = "core.error.not_found"
		}
		message := T(loc, key)

		hw := newHTMLWriter(w)
		hw.raw("<!DOCTYPE html><html")
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><title>`)
		hw.text(message)
		hw.raw(`</title><link rel="stylesheet"`)
		hw.attr("href", routepath.Static("portfolio.css"))
		hw.raw(`></head><body><div class="page theme-dark"><main class="section"><div class="container error">`)
		hw.raw(`<p class="eyebrow">`)
		hw.text(strconv.Itoa(statusCode))
		hw.raw("</p><h1>")
		hw.text(message)
		hw.raw(`</h1><a class="button"`)
		hw.attr("href", routepath.Root)
		hw.raw(">")
		hw.text(T(loc, "core.error.back"))
		hw.raw("</a></div></main></div></body></html>")
		return hw.err
	})
}
