package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/export"
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/render"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/internal/workspace"
)

// ErrEmptyPayload is returned when a download is requested before any
// content was entered.
var ErrEmptyPayload = errors.New("nothing to export: payload is empty")

// Options are the request limits and payload settings of a Handler.
type Options struct {
	MaxLogoBytes int64
	Payload      payload.Options
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	store    *workspace.Store
	pipeline *export.Pipeline
	log      *zap.Logger
	opts     Options
}

// New returns a Handler. A nil logger discards output.
func New(store *workspace.Store, pipeline *export.Pipeline, log *zap.Logger, opts Options) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, pipeline: pipeline, log: log, opts: opts}
}

// Routes registers every page and API route on r.
func (h *Handler) Routes(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/healthz", h.Healthz)
	r.GET("/sitemap.xml", h.SitemapXML)

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.GET("/payload", h.PayloadHandler)
		api.POST("/htmx/toast", h.GenericToast)

		ws := api.Group("/workspaces/:id")
		ws.GET("", h.GetWorkspace)
		ws.PUT("/type", h.SetType)
		ws.PUT("/fields", h.SetField)
		ws.PUT("/style", h.UpdateStyle)
		ws.POST("/logo", h.UploadLogo)
		ws.DELETE("/logo", h.RemoveLogo)
		ws.GET("/preview", h.PreviewSVG)
		ws.GET("/download", h.Download)
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	host := c.Request.Host
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil && (host == "localhost:8080" || host == "127.0.0.1:8080") {
		scheme = "http"
	}
	base := scheme + "://" + host
	xml := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <url>\n" +
		"    <loc>" + base + "/" + "</loc>\n" +
		"    <changefreq>weekly</changefreq>\n" +
		"    <priority>1.0</priority>\n" +
		"  </url>\n" +
		"</urlset>\n"
	c.String(http.StatusOK, xml)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, payload.ErrUnknownContentType),
		errors.Is(err, payload.ErrUnknownField),
		errors.Is(err, style.ErrInvalidOption),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, render.ErrInvalidSize),
		errors.Is(err, ErrInvalidUpload):
		return http.StatusBadRequest
	case errors.Is(err, workspace.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyPayload),
		errors.Is(err, export.ErrNoSource),
		errors.Is(err, export.ErrNoRasterSurface),
		errors.Is(err, render.ErrEncode):
		return http.StatusUnprocessableEntity
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// fail writes err as a JSON error body. HTMX requests also get an error toast
// through HX-Trigger since htmx does not swap error responses.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.requestLogger(c).Error("request failed", zap.Error(err))
		msg = "internal server error"
	}
	c.Writer.Header().Del("HX-Trigger")
	if isHTMX(c) {
		setToastTrigger(c, msg, "error")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
