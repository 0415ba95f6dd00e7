package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/export"
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/render"
	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// httpDownloader writes an artifact as the response body.
type httpDownloader struct {
	c          *gin.Context
	attachment bool
}

func (d httpDownloader) Download(_ context.Context, a export.Artifact) error {
	disposition := "inline"
	if d.attachment {
		disposition = "attachment"
	}
	d.c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, a.Filename))
	d.c.Header("Cache-Control", "no-store")
	d.c.Data(http.StatusOK, a.MIMEType, a.Data)
	return nil
}

// queryPayload builds the payload from the type query parameter and the
// field names of that type. Absent fields keep their defaults.
func (h *Handler) queryPayload(c *gin.Context) (payload.ContentType, string, error) {
	t, err := payload.ParseContentType(c.DefaultQuery("type", string(payload.TypeURL)))
	if err != nil {
		return "", "", err
	}
	content, err := payload.New(t)
	if err != nil {
		return "", "", err
	}
	fields := make(map[string]string)
	for _, name := range content.FieldNames() {
		if v, ok := c.GetQuery(name); ok {
			fields[name] = v
		}
	}
	p, err := payload.BuildWith(t, fields, h.opts.Payload)
	if err != nil {
		return "", "", err
	}
	return t, p, nil
}

// PayloadHandler returns the payload for the query without rendering it.
func (h *Handler) PayloadHandler(c *gin.Context) {
	t, p, err := h.queryPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": t, "payload": p})
}

// QRCodeHandler renders a QR code straight from query parameters: the
// content type and its fields, the style keys, format and download.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	_, p, err := h.queryPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatPNG)))
	if err != nil {
		h.fail(c, err)
		return
	}

	cfg := style.Default()
	if err := cfg.Apply(c.Request.URL.Query()); err != nil {
		h.fail(c, err)
		return
	}

	doc, err := render.Render(p, cfg)
	if err != nil {
		h.fail(c, err)
		return
	}

	download := strings.EqualFold(c.Query("download"), "1") || strings.EqualFold(c.Query("download"), "true")
	h.requestLogger(c).Debug("qr request",
		zap.String("format", string(format)),
		zap.Int("size", cfg.Size),
		zap.Int("modules", doc.Modules),
		zap.Bool("download", download),
	)

	if _, err := h.pipeline.Export(c.Request.Context(), doc, format, httpDownloader{c: c, attachment: download}); err != nil {
		h.fail(c, err)
	}
}
