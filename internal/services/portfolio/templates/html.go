package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first error, so components can emit
// a run of fragments and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup.
func (hw *htmlWriter) raw(markup string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, markup)
}

// text writes escaped text.
func (hw *htmlWriter) text(value string) {
	hw.raw(templ.EscapeString(value))
}

// attr writes ` name="value"` with value escaped.
func (hw *htmlWriter) attr(name string, value string) {
	hw.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// open writes a start tag with name/value attribute pairs, each value escaped.
func (hw *htmlWriter) open(tag string, attrs ...string) {
	hw.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		hw.attr(attrs[i], attrs[i+1])
	}
	hw.raw(">")
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}
