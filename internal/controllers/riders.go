package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

var riders = resource[models.Rider]{
	spec:   listview.Riders,
	key:    query.Key{"riders"},
	fetch:  func(c *api.Client) func(context.Context) ([]models.Rider, error) { return c.Riders },
	export: "/riders/export.csv",
	mode:   views.ModeCards,
}

// ListRiders renders GET /riders.
func (h *Handler) ListRiders(c *gin.Context) {
	l, ok := readList(h, c, riders)
	if !ok {
		return
	}
	h.render(c, "riders", views.Page{
		Title:   "Riders",
		Nav:     "riders",
		Refresh: refreshIf(l.State == views.StateLoading),
		Data:    l,
	})
}

// ExportRiders serves GET /riders/export.csv.
func (h *Handler) ExportRiders(c *gin.Context) {
	exportList(h, c, riders)
}

// GetRider renders GET /riders/:id.
func (h *Handler) GetRider(c *gin.Context) {
	id := c.Param("id")
	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, query.Key{"rider", id}, func(ctx context.Context) (models.Rider, error) {
		return client.Rider(ctx, id)
	})
	if h.unauthorized(c, st.Err) || h.notFound(c, st.Err) {
		return
	}
	d := views.NewDetail(st)
	h.render(c, "rider", views.Page{
		Title:   "Rider",
		Nav:     "riders",
		Refresh: refreshIf(d.Loading),
		Data:    d,
	})
}
