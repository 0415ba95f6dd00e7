package qr_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/components/qr"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func pageData() components.PageData {
	return components.PageData{
		WorkspaceID: "ws1",
		Type:        payload.TypeWiFi,
		Values:      map[string]string{"ssid": "Home", "password": "secret", "encryption": "WEP"},
		Payload:     "WIFI:T:WEP;S:Home;P:secret;;",
		Style:       style.Default(),
		PreviewSVG:  `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
	}
}

func TestContentForm(t *testing.T) {
	t.Parallel()

	html := render(t, qr.ContentForm(pageData()))

	assert.Contains(t, html, `id="content-form"`)
	assert.Contains(t, html, "QR Code Content")
	assert.Contains(t, html, `hx-put="/api/workspaces/ws1/type"`)
	assert.Contains(t, html, `<option value="wifi" selected>`)
	assert.Contains(t, html, "Network Name (SSID)")
	assert.Contains(t, html, `value="Home"`)
	assert.Contains(t, html, `<option value="WEP" selected>`)
	assert.Contains(t, html, `hx-put="/api/workspaces/ws1/fields"`)
	assert.NotContains(t, html, "Website URL")
}

func TestContentForm_EscapesValues(t *testing.T) {
	t.Parallel()

	data := pageData()
	data.Type = payload.TypeText
	data.Values = map[string]string{"text": "</textarea><script>"}

	html := render(t, qr.ContentForm(data))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;/textarea&gt;&lt;script&gt;")
}

func TestStylePanel(t *testing.T) {
	t.Parallel()

	html := render(t, qr.StylePanel(pageData()))

	assert.Contains(t, html, "Customize")
	assert.Contains(t, html, `name="size"`)
	assert.Contains(t, html, `min="128"`)
	assert.Contains(t, html, `max="512"`)
	assert.Contains(t, html, `step="32"`)
	assert.Contains(t, html, "Rounded Dots")
	assert.Contains(t, html, "Extra Rounded")
	assert.Contains(t, html, "Tooltip Bubble")
	assert.Contains(t, html, "Medium (15%)")
	assert.Contains(t, html, `<option value="M" selected>`)
	assert.Contains(t, html, "Upload Logo/Image")
	assert.NotContains(t, html, "Logo Size")
	assert.NotContains(t, html, "Remove Logo")
}

func TestStylePanel_WithLogo(t *testing.T) {
	t.Parallel()

	data := pageData()
	data.Style.SetLogoImage("data:image/png;base64,AAAA")

	html := render(t, qr.StylePanel(data))
	assert.Contains(t, html, "Logo Size: ")
	assert.Contains(t, html, "Logo Opacity: ")
	assert.Contains(t, html, `hx-delete="/api/workspaces/ws1/logo"`)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	html := render(t, qr.Preview(pageData(), false))

	assert.Contains(t, html, "Your QR Code")
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, `href="/api/workspaces/ws1/download?format=png"`)
	assert.Contains(t, html, `href="/api/workspaces/ws1/download?format=jpg"`)
	assert.Contains(t, html, "QR Code downloaded as SVG!")
	assert.NotContains(t, html, "hx-swap-oob")
	assert.NotContains(t, html, "disabled")
}

func TestPreview_EmptyPayloadDisablesDownloads(t *testing.T) {
	t.Parallel()

	data := pageData()
	data.Payload = ""

	html := render(t, qr.Preview(data, true))
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Contains(t, html, "disabled")
	assert.NotContains(t, html, "/download?format=")
}

func TestStylePanel_ForegroundPresets(t *testing.T) {
	t.Parallel()

	html := render(t, qr.StylePanel(pageData()))

	for _, c := range components.PresetColors {
		assert.Contains(t, html, `title="`+c.Label+`"`)
		assert.Contains(t, html, `data-color="`+c.Value+`"`)
	}
	assert.Equal(t, len(components.PresetColors), strings.Count(html, "data-color="), "only the foreground has presets")
}
