package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup for components built directly on templ.ComponentFunc.
// The first write error sticks and is reported by Err.
type HTML struct {
	w   io.Writer
	err error
}

func NewHTML(w io.Writer) *HTML { return &HTML{w: w} }

// Raw writes s unescaped.
func (h *HTML) Raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// Text writes s as escaped text content.
func (h *HTML) Text(s string) { h.Raw(templ.EscapeString(s)) }

// Attr writes ` name="value"` with value escaped.
func (h *HTML) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes a boolean attribute when on is true.
func (h *HTML) AttrIf(on bool, name string) {
	if on {
		h.Raw(" " + name)
	}
}

// Render writes a child component.
func (h *HTML) Render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func (h *HTML) Err() error { return h.err }
