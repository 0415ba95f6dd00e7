// Package qr renders the editor fragments: the content form, the style
// controls and the preview with its download buttons. Each fragment carries a
// stable id so HTMX responses can swap it in place.
package qr

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrforge/internal/export"
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/components/utils"
)

const (
	ContentFormID = "content-form"
	StylePanelID  = "style-panel"
	PreviewID     = "preview"
)

const (
	cardClass   = "space-y-4 rounded-2xl border border-zinc-800 bg-zinc-900/60 p-6"
	headClass   = "text-lg font-semibold"
	labelClass  = "block text-sm font-medium text-zinc-300"
	inputClass  = "mt-1 w-full rounded-lg border border-zinc-700 bg-zinc-950 px-3 py-2 text-sm focus:border-violet-500 focus:outline-none"
	buttonClass = "inline-flex items-center justify-center rounded-lg bg-violet-600 px-4 py-2 text-sm font-medium text-white hover:bg-violet-500"
)

// ContentForm is the content type selector with the fields of the active type.
func ContentForm(data components.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw("<div")
		h.Attr("id", ContentFormID)
		h.Attr("class", cardClass)
		h.Raw(">")
		h.Raw(`<h2 class="` + headClass + `">QR Code Content</h2>`)

		h.Raw(`<div><label for="content-type" class="` + labelClass + `">Content Type</label><select id="content-type" name="type"`)
		h.Attr("class", inputClass)
		h.Attr("hx-put", data.WorkspaceURL("/type"))
		h.Attr("hx-target", "#"+ContentFormID)
		h.Attr("hx-swap", "outerHTML")
		h.Raw(">")
		for _, t := range payload.ContentTypes {
			option(h, string(t), t.Label(), t == data.Type)
		}
		h.Raw("</select></div>")

		for _, f := range components.Fields(data.Type) {
			field(h, data, f)
		}
		h.Raw("</div>")
		return h.Err()
	})
}

func field(h *components.HTML, data components.PageData, f components.FieldSpec) {
	id := "field-" + f.Name
	value := data.Values[f.Name]
	vals, _ := json.Marshal(map[string]string{"name": f.Name})

	h.Raw("<div><label")
	h.Attr("for", id)
	h.Attr("class", labelClass)
	h.Raw(">")
	h.Text(f.Label)
	h.Raw("</label>")

	fieldAttrs := func(trigger string) {
		h.Attr("id", id)
		h.Attr("name", "value")
		h.Attr("class", inputClass)
		h.Attr("hx-put", data.WorkspaceURL("/fields"))
		h.Attr("hx-vals", string(vals))
		h.Attr("hx-trigger", trigger)
		h.Attr("hx-target", "#"+PreviewID)
		h.Attr("hx-swap", "outerHTML")
		if f.Placeholder != "" {
			h.Attr("placeholder", f.Placeholder)
		}
	}

	switch f.Kind {
	case components.InputTextarea:
		h.Raw("<textarea")
		fieldAttrs("input changed delay:300ms")
		h.Attr("rows", strconv.Itoa(f.Rows))
		h.Raw(">")
		h.Text(value)
		h.Raw("</textarea>")
	case components.InputSelect:
		h.Raw("<select")
		fieldAttrs("change")
		h.Raw(">")
		for _, o := range f.Options {
			option(h, o.Value, o.Label, o.Value == value)
		}
		h.Raw("</select>")
	default:
		h.Raw("<input")
		h.Attr("type", string(f.Kind))
		fieldAttrs("input changed delay:300ms")
		h.Attr("value", value)
		h.Raw(">")
	}
	h.Raw("</div>")
}

// StylePanel holds the style form and the logo upload. It is swapped as a
// whole when the logo changes because the logo sliders only show with a logo.
func StylePanel(data components.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg := data.Style
		h := components.NewHTML(w)

		h.Raw("<div")
		h.Attr("id", StylePanelID)
		h.Attr("class", cardClass)
		h.Raw(">")
		h.Raw(`<h2 class="` + headClass + `">Customize</h2>`)

		h.Raw("<form")
		h.Attr("id", "style-form")
		h.Attr("class", "space-y-4")
		h.Attr("hx-put", data.WorkspaceURL("/style"))
		h.Attr("hx-trigger", "change, input delay:300ms")
		h.Attr("hx-target", "#"+PreviewID)
		h.Attr("hx-swap", "outerHTML")
		h.Raw(">")

		slider(h, style.KeySize, "QR Code Size: ", "px", cfg.Size, style.MinSize, style.MaxSize, style.SizeStep)
		colorInput(h, style.KeyForeground, "Foreground Color", cfg.Foreground, components.PresetColors...)
		colorInput(h, style.KeyBackground, "Background Color", cfg.Background)
		checkbox(h, style.KeyUseGradient, "Use Gradient", cfg.UseGradient)
		colorInput(h, style.KeyGradientColor, "Gradient Color", cfg.GradientColor)
		checkbox(h, style.KeyIncludeMargin, "Include Margin", cfg.IncludeMargin)

		selectInput(h, style.KeyDotStyle, "Dot Style", string(cfg.DotStyle), options(style.DotStyles, style.DotStyle.Label))
		selectInput(h, style.KeyCornerStyle, "Corner Style", string(cfg.CornerStyle), options(style.CornerStyles, style.CornerStyle.Label))
		selectInput(h, style.KeyFrameStyle, "Frame Style", string(cfg.FrameStyle), options(style.FrameStyles, style.FrameStyle.Label))

		h.Raw(`<div><label for="frameText" class="` + labelClass + `">Frame Text</label><input type="text" id="frameText" name="frameText"`)
		h.Attr("placeholder", style.DefaultFrameText)
		h.Attr("class", inputClass)
		h.Attr("value", cfg.FrameText)
		h.Raw("></div>")

		if cfg.HasLogo() {
			slider(h, style.KeyLogoSize, "Logo Size: ", "px", cfg.LogoSize, style.MinLogoSize, style.MaxLogoSize, style.LogoSizeStep)
			slider(h, style.KeyLogoOpacity, "Logo Opacity: ", "%", cfg.LogoOpacity, 0, style.MaxLogoOpacity, style.LogoOpacityStep)
		}

		selectInput(h, style.KeyErrorLevel, "Error Correction Level", string(cfg.ErrorLevel), options(style.ErrorLevels, style.ErrorLevel.Label))
		h.Raw("</form>")

		logoForm(h, data)
		h.Raw("</div>")
		return h.Err()
	})
}

func logoForm(h *components.HTML, data components.PageData) {
	h.Raw("<form")
	h.Attr("id", "logo-form")
	h.Attr("class", "space-y-2")
	h.Attr("hx-post", data.WorkspaceURL("/logo"))
	h.Attr("hx-encoding", "multipart/form-data")
	h.Attr("hx-trigger", "change")
	h.Attr("hx-target", "#"+StylePanelID)
	h.Attr("hx-swap", "outerHTML")
	h.Raw(">")
	h.Raw(`<label for="logo" class="` + labelClass + `">Upload Logo/Image</label>`)
	h.Raw(`<input type="file" id="logo" name="logo" accept="image/*"`)
	h.Attr("class", utils.TwMerge(inputClass, "file:mr-3 file:rounded-md file:border-0 file:bg-zinc-800 file:px-3 file:py-1 file:text-zinc-200"))
	h.Raw(">")
	if data.Style.HasLogo() {
		h.Raw(`<button type="button"`)
		h.Attr("class", utils.TwMerge(buttonClass, "bg-zinc-800 hover:bg-zinc-700"))
		h.Attr("hx-delete", data.WorkspaceURL("/logo"))
		h.Attr("hx-target", "#"+StylePanelID)
		h.Attr("hx-swap", "outerHTML")
		h.Raw(">Remove Logo</button>")
	}
	h.Raw("</form>")
}

// Preview shows the rendered SVG, the payload and the download buttons. With
// oob set it is marked for an out-of-band swap.
func Preview(data components.PageData, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw("<div")
		h.Attr("id", PreviewID)
		h.Attr("class", cardClass)
		if oob {
			h.Attr("hx-swap-oob", "true")
		}
		h.Raw(">")
		h.Raw(`<h2 class="` + headClass + `">Your QR Code</h2>`)

		h.Raw(`<div class="flex justify-center rounded-xl bg-zinc-950 p-4" data-qr-preview>`)
		h.Raw(data.PreviewSVG)
		h.Raw("</div>")

		h.Raw(`<p class="break-all font-mono text-xs text-zinc-400" data-payload>`)
		h.Text(data.Payload)
		h.Raw("</p>")

		h.Raw(`<div class="grid grid-cols-3 gap-2">`)
		for _, f := range export.Formats {
			downloadButton(h, data, f)
		}
		h.Raw("</div></div>")
		return h.Err()
	})
}

func downloadButton(h *components.HTML, data components.PageData, f export.Format) {
	label := "Download " + f.Label()
	if !data.CanDownload() {
		h.Raw(`<button type="button" disabled`)
		h.Attr("class", utils.TwMerge(buttonClass, "cursor-not-allowed opacity-50"))
		h.Raw(">")
		h.Text(label)
		h.Raw("</button>")
		return
	}

	vals, _ := json.Marshal(map[string]string{
		"title":   export.DownloadMessage(f),
		"variant": "success",
	})
	h.Raw("<span")
	h.Attr("hx-post", "/api/htmx/toast")
	h.Attr("hx-vals", string(vals))
	h.Attr("hx-trigger", "click")
	h.Attr("hx-target", "#toasts")
	h.Attr("hx-swap", "beforeend")
	h.Raw("><a")
	h.Attr("href", data.WorkspaceURL("/download?format="+string(f)))
	h.Attr("download", f.Filename())
	h.Attr("class", utils.TwMerge(buttonClass, "w-full"))
	h.Raw(">")
	h.Text(label)
	h.Raw("</a></span>")
}

func option(h *components.HTML, value, label string, selected bool) {
	h.Raw("<option")
	h.Attr("value", value)
	h.AttrIf(selected, "selected")
	h.Raw(">")
	h.Text(label)
	h.Raw("</option>")
}

func options[T ~string](values []T, label func(T) string) []components.Option {
	out := make([]components.Option, 0, len(values))
	for _, v := range values {
		out = append(out, components.Option{Value: string(v), Label: label(v)})
	}
	return out
}

func selectInput(h *components.HTML, name, label, value string, opts []components.Option) {
	h.Raw("<div><label")
	h.Attr("for", name)
	h.Attr("class", labelClass)
	h.Raw(">")
	h.Text(label)
	h.Raw("</label><select")
	h.Attr("id", name)
	h.Attr("name", name)
	h.Attr("class", inputClass)
	h.Raw(">")
	for _, o := range opts {
		option(h, o.Value, o.Label, o.Value == value)
	}
	h.Raw("</select></div>")
}

func colorInput(h *components.HTML, name, label, value string, presets ...components.Option) {
	h.Raw("<div><label")
	h.Attr("for", name)
	h.Attr("class", labelClass)
	h.Raw(">")
	h.Text(label)
	h.Raw(`</label><div class="mt-1 flex gap-2"><input type="color"`)
	h.Attr("value", value)
	h.Attr("class", "h-9 w-12 cursor-pointer rounded border border-zinc-700 bg-transparent")
	h.Attr("oninput", "this.nextElementSibling.value=this.value")
	h.Raw("><input type=\"text\"")
	h.Attr("id", name)
	h.Attr("name", name)
	h.Attr("value", value)
	h.Attr("class", utils.TwMerge(inputClass, "mt-0 font-mono"))
	h.Raw("></div>")
	if len(presets) > 0 {
		h.Raw(`<div class="mt-2 flex flex-wrap gap-2">`)
		for _, p := range presets {
			presetButton(h, name, p)
		}
		h.Raw("</div>")
	}
	h.Raw("</div>")
}

// presetButton fills the text input of name and fires a change so the
// style form submits.
func presetButton(h *components.HTML, name string, p components.Option) {
	h.Raw(`<button type="button" class="h-8 w-8 rounded-lg border-2 border-white/20 transition-all hover:border-violet-500"`)
	h.Attr("title", p.Label)
	h.Attr("style", "background-color: "+p.Value)
	h.Attr("data-color", p.Value)
	h.Attr("onclick", "var i=document.getElementById('"+name+"');i.value=this.dataset.color;"+
		"i.previousElementSibling.value=i.value;i.dispatchEvent(new Event('change',{bubbles:true}))")
	h.Raw("></button>")
}

// checkbox is preceded by a hidden "off" so an unchecked box still submits;
// the checkbox value comes last and wins when checked.
func checkbox(h *components.HTML, name, label string, checked bool) {
	h.Raw(`<div class="flex items-center gap-2"><input type="hidden" value="off"`)
	h.Attr("name", name)
	h.Raw(`><input type="checkbox" value="on" class="h-4 w-4 accent-violet-600"`)
	h.Attr("id", name)
	h.Attr("name", name)
	h.AttrIf(checked, "checked")
	h.Raw("><label")
	h.Attr("for", name)
	h.Attr("class", labelClass)
	h.Raw(">")
	h.Text(label)
	h.Raw("</label></div>")
}

func slider(h *components.HTML, name, prefix, unit string, value, lo, hi, step int) {
	h.Raw("<div><label")
	h.Attr("for", name)
	h.Attr("class", labelClass)
	h.Raw(">")
	h.Text(prefix)
	h.Raw("<output>" + strconv.Itoa(value) + "</output>")
	h.Text(unit)
	h.Raw(`</label><input type="range" class="mt-2 w-full accent-violet-600"`)
	h.Attr("id", name)
	h.Attr("name", name)
	h.Attr("min", strconv.Itoa(lo))
	h.Attr("max", strconv.Itoa(hi))
	h.Attr("step", strconv.Itoa(step))
	h.Attr("value", strconv.Itoa(value))
	h.Attr("oninput", "this.previousElementSibling.querySelector('output').value=this.value")
	h.Raw("></div>")
}
