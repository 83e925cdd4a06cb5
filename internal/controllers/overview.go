package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

// Overview renders GET /: platform totals and the weekly signup series for
// the selected period.
func (h *Handler) Overview(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("period"))
	period := views.ParsePeriod(days)

	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, query.Key{"summary", strconv.Itoa(period)}, func(ctx context.Context) (models.Summary, error) {
		return client.Summary(ctx, period)
	})
	if h.unauthorized(c, st.Err) {
		return
	}

	page := views.Page{
		Title:   "Overview",
		Nav:     "overview",
		Refresh: refreshIf(st.IsLoading),
		Data:    views.NewOverview(st, period),
	}
	if st.Err != nil {
		page.Error = st.Err.Error()
	}
	h.render(c, "overview", page)
}
