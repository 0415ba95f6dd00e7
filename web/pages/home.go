package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/components/qr"
)

const toastScript = `
(function () {
  function arm(el) {
    if (el.dataset.armed) return;
    el.dataset.armed = "1";
    var d = parseInt(el.dataset.duration || "0", 10);
    if (d > 0) setTimeout(function () { el.remove(); }, d);
  }
  document.addEventListener("htmx:load", function (e) {
    var root = e.detail.elt;
    if (root.matches && root.matches("[data-toast]")) arm(root);
    if (root.querySelectorAll) root.querySelectorAll("[data-toast]").forEach(arm);
  });
  document.addEventListener("click", function (e) {
    var b = e.target.closest("[data-toast-dismiss]");
    if (b) b.closest("[data-toast]").remove();
  });
  document.body.addEventListener("showToast", function (e) {
    htmx.ajax("POST", "/api/htmx/toast", {
      target: "#toasts",
      swap: "beforeend",
      values: { title: e.detail.title, variant: e.detail.variant }
    });
  });
})();
`

// HomePage is the generator: content form, style controls and preview.
func HomePage(data components.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>QR Code Generator</title>`)
		h.Raw(`<meta name="description" content="Create QR codes for links, text, email, phone, SMS, WiFi and contact cards. Customize colors, shapes, frames and logos, then download as PNG, SVG or JPG.">`)
		h.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		h.Raw(`</head><body class="min-h-screen bg-zinc-950 text-zinc-100 antialiased">`)

		h.Raw(`<main class="mx-auto grid max-w-6xl gap-6 p-6 lg:grid-cols-3">`)
		h.Raw(`<header class="lg:col-span-3"><h1 class="text-3xl font-bold">QR Code Generator</h1></header>`)
		h.Render(ctx, qr.ContentForm(data))
		h.Render(ctx, qr.StylePanel(data))
		h.Render(ctx, qr.Preview(data, false))
		h.Raw(`</main><div id="toasts"></div>`)

		h.Raw("<script>" + toastScript + "</script>")
		h.Raw(`</body></html>`)
		return h.Err()
	})
}
