package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/export"
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/render"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/internal/workspace"
	"github.com/cristianadrielbraun/qrforge/web/components"
	"github.com/cristianadrielbraun/qrforge/web/components/qr"
	"github.com/cristianadrielbraun/qrforge/web/pages"
)

// ErrInvalidUpload is returned when the logo form part is missing or unreadable.
var ErrInvalidUpload = errors.New("invalid logo upload")

// Home starts a new workspace and renders the generator page.
func (h *Handler) Home(c *gin.Context) {
	ws := h.store.Create()
	data, err := h.pageData(ws)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.html(c, pages.HomePage(data))
}

func (h *Handler) workspace(c *gin.Context) (*workspace.Workspace, bool) {
	ws, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return ws, true
}

// pageData renders the preview from a single snapshot so markup and SVG
// always agree.
func (h *Handler) pageData(ws *workspace.Workspace) (components.PageData, error) {
	snap := ws.Snapshot()
	doc, err := render.Render(snap.Payload, snap.Style)
	if err != nil {
		return components.PageData{}, err
	}
	return components.PageData{
		WorkspaceID: snap.ID,
		Type:        snap.Type,
		Values:      snap.Fields,
		Payload:     snap.Payload,
		Style:       snap.Style,
		PreviewSVG:  doc.XML,
	}, nil
}

func (h *Handler) html(c *gin.Context, comps ...templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	for _, comp := range comps {
		if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
			h.requestLogger(c).Error("render failed", zap.Error(err))
			return
		}
	}
}

// respond sends the fragments built by view to HTMX requests and body as JSON
// to everyone else.
func (h *Handler) respond(c *gin.Context, ws *workspace.Workspace, body any, view func(components.PageData) []templ.Component) {
	if !isHTMX(c) {
		c.JSON(http.StatusOK, body)
		return
	}
	data, err := h.pageData(ws)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.html(c, view(data)...)
}

func previewOnly(data components.PageData) []templ.Component {
	return []templ.Component{qr.Preview(data, false)}
}

// GetWorkspace returns the workspace snapshot.
func (h *Handler) GetWorkspace(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

// SetType switches the content type. HTMX gets the new field set and an
// out-of-band preview.
func (h *Handler) SetType(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	t, err := payload.ParseContentType(c.PostForm("type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := ws.SetType(t)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, ws, gin.H{"type": t, "payload": p}, func(data components.PageData) []templ.Component {
		return []templ.Component{qr.ContentForm(data), qr.Preview(data, true)}
	})
}

// SetField updates one field of the active content type.
func (h *Handler) SetField(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	p, err := ws.SetField(c.PostForm("name"), c.PostForm("value"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, ws, gin.H{"payload": p}, previewOnly)
}

// UpdateStyle applies the submitted style keys. Absent keys are unchanged.
func (h *Handler) UpdateStyle(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", style.ErrInvalidOption, err))
		return
	}
	err := ws.UpdateStyle(func(cfg *style.RenderConfig) error {
		return cfg.Apply(c.Request.PostForm)
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, ws, ws.Snapshot().Style, previewOnly)
}

func stylePanelAndPreview(data components.PageData) []templ.Component {
	return []templ.Component{qr.StylePanel(data), qr.Preview(data, true)}
}

// UploadLogo reads the multipart "logo" file into a data URL.
func (h *Handler) UploadLogo(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	if h.opts.MaxLogoBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxLogoBytes)
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.fail(c, err)
			return
		}
		h.fail(c, fmt.Errorf("%w: %v", ErrInvalidUpload, err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", ErrInvalidUpload, err))
		return
	}
	defer f.Close()

	type loaded struct {
		dataURL string
		err     error
	}
	done := make(chan loaded, 1)
	style.LoadLogo(c.Request.Context(), f, func(dataURL string, err error) {
		done <- loaded{dataURL, err}
	})
	res := <-done
	if res.err != nil {
		h.fail(c, res.err)
		return
	}

	ws.SetLogo(res.dataURL)
	h.requestLogger(c).Debug("logo uploaded",
		zap.String("workspace_id", ws.ID),
		zap.String("filename", fh.Filename),
		zap.Int64("bytes", fh.Size),
	)
	h.respond(c, ws, ws.Snapshot().Style, stylePanelAndPreview)
}

func (h *Handler) RemoveLogo(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	ws.ClearLogo()
	h.respond(c, ws, ws.Snapshot().Style, stylePanelAndPreview)
}

// PreviewSVG serves the current document as SVG.
func (h *Handler) PreviewSVG(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	doc, err := ws.Render()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, export.FormatSVG.MIMEType(), []byte(doc.XML))
}

// Download exports the workspace as an attachment.
func (h *Handler) Download(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatPNG)))
	if err != nil {
		h.fail(c, err)
		return
	}
	snap := ws.Snapshot()
	if snap.Payload == "" {
		h.fail(c, ErrEmptyPayload)
		return
	}

	doc, err := render.Render(snap.Payload, snap.Style)
	if err != nil {
		h.fail(c, err)
		return
	}

	setToastTrigger(c, export.DownloadMessage(format), "success")
	if _, err := h.pipeline.Export(c.Request.Context(), doc, format, httpDownloader{c: c, attachment: true}); err != nil {
		h.fail(c, err)
	}
}
