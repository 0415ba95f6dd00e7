package toast

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/components/utils"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a form value to a Variant, defaulting to success.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	case "default":
		return VariantDefault
	}
	return VariantSuccess
}

type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

type Props struct {
	ID            string
	Class         string
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	Duration      int // milliseconds, 0 keeps the toast until dismissed
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-zinc-700 text-zinc-100",
	VariantSuccess: "border-emerald-500/40 text-emerald-100",
	VariantError:   "border-red-500/50 text-red-100",
	VariantWarning: "border-amber-500/50 text-amber-100",
	VariantInfo:    "border-sky-500/50 text-sky-100",
}

var positionClasses = map[Position]string{
	PositionTopRight:     "top-4 right-4",
	PositionTopLeft:      "top-4 left-4",
	PositionBottomRight:  "bottom-4 right-4",
	PositionBottomLeft:   "bottom-4 left-4",
	PositionBottomCenter: "bottom-4 left-1/2 -translate-x-1/2",
}

var icons = map[Variant]string{
	VariantSuccess: `<path d="M20 6 9 17l-5-5"/>`,
	VariantError:   `<circle cx="12" cy="12" r="10"/><path d="m15 9-6 6"/><path d="m9 9 6 6"/>`,
	VariantWarning: `<path d="M12 9v4"/><path d="M12 17h.01"/><path d="M10.3 3.9 1.8 18a2 2 0 0 0 1.7 3h17a2 2 0 0 0 1.7-3L13.7 3.9a2 2 0 0 0-3.4 0z"/>`,
	VariantInfo:    `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`,
}

// Toast renders a notification for HTMX swaps. Dismissal and the timeout are
// handled by the page script through the data attributes.
func Toast(p Props) templ.Component {
	if p.Variant == "" {
		p.Variant = VariantDefault
	}
	if p.Position == "" {
		p.Position = PositionBottomRight
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)

		h.Raw("<div")
		if p.ID != "" {
			h.Attr("id", p.ID)
		}
		h.Attr("data-toast", "")
		h.Attr("data-duration", strconv.Itoa(p.Duration))
		h.Attr("role", "status")
		h.Attr("class", utils.TwMerge(
			"fixed z-50 w-80 overflow-hidden rounded-xl border bg-zinc-900/95 shadow-lg backdrop-blur transition-opacity",
			positionClasses[p.Position],
			variantClasses[p.Variant],
			p.Class,
		))
		h.Raw(`><div class="flex items-start gap-3 p-4">`)

		if icon, ok := icons[p.Variant]; ok && p.Icon {
			h.Raw(`<svg class="mt-0.5 h-5 w-5 shrink-0" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
			h.Raw(icon)
			h.Raw(`</svg>`)
		}

		h.Raw(`<div class="flex-1 space-y-1">`)
		if p.Title != "" {
			h.Raw(`<p class="text-sm font-semibold">`)
			h.Text(p.Title)
			h.Raw(`</p>`)
		}
		if p.Description != "" {
			h.Raw(`<p class="text-sm opacity-80">`)
			h.Text(p.Description)
			h.Raw(`</p>`)
		}
		h.Raw(`</div>`)

		if p.Dismissible {
			h.Raw(`<button type="button" data-toast-dismiss aria-label="Close" class="opacity-60 hover:opacity-100">&times;</button>`)
		}
		h.Raw(`</div>`)

		if p.ShowIndicator && p.Duration > 0 {
			h.Raw(`<div data-toast-indicator class="h-1 bg-current opacity-40"></div>`)
		}
		h.Raw(`</div>`)
		return h.Err()
	})
}
