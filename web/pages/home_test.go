package pages_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/pages"
)

func TestHomePage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := pages.HomePage(components.PageData{
		WorkspaceID: "abc",
		Type:        payload.TypeURL,
		Values:      map[string]string{"url": ""},
		Payload:     "https://example.com",
		Style:       style.Default(),
		PreviewSVG:  "<svg></svg>",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "htmx.org")
	assert.Contains(t, html, `id="content-form"`)
	assert.Contains(t, html, `id="style-panel"`)
	assert.Contains(t, html, `id="preview"`)
	assert.Contains(t, html, `id="toasts"`)
	assert.Contains(t, html, "Website URL")
}
