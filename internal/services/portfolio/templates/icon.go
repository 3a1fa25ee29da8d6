package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pbhende/portfolio/internal/platform/icons"
)

// Icon renders a Lucide glyph inline. Unknown ids render nothing.
func Icon(id string, size int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		path, ok := icons.LucidePath(id)
		if !ok {
			return nil
		}
		if size <= 0 {
			size = 16
		}
		hw := newHTMLWriter(w)
		hw.raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		hw.attr("class", "icon "+icons.LucideSymbolID(id))
		hw.attr("width", strconv.Itoa(size))
		hw.attr("height", strconv.Itoa(size))
		hw.raw(">")
		hw.raw(path)
		hw.raw("</svg>")
		return hw.err
	})
}
