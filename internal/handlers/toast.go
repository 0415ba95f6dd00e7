package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	toast "github.com/cristianadrielbraun/qrforge/web/components/ui/toast"
)

const toastEvent = "showToast"

// GenericToast returns a Toast component rendered as HTML for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	variant := toast.ParseVariant(c.PostForm("variant"))
	dismissible := c.PostForm("dismissible") == "on"

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	_ = toast.Toast(toast.Props{
		Title:         title,
		Description:   description,
		Variant:       variant,
		Position:      toast.PositionBottomRight,
		Duration:      2000,
		Dismissible:   dismissible,
		ShowIndicator: false,
		Icon:          true,
	}).Render(c.Request.Context(), c.Writer)
}

// setToastTrigger asks the page to show a toast once the response arrives.
func setToastTrigger(c *gin.Context, title, variant string) {
	b, err := json.Marshal(map[string]map[string]string{
		toastEvent: {"title": title, "variant": variant},
	})
	if err != nil {
		return
	}
	c.Header("HX-Trigger", string(b))
}
