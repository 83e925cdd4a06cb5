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

var trips = resource[models.Trip]{
	spec:    listview.Trips,
	key:     query.Key{"trips"},
	fetch:   func(c *api.Client) func(context.Context) ([]models.Trip, error) { return c.Trips },
	export:  "/trips/export.csv",
	mode:    views.ModeTable,
	selects: tripSelects,
}

// tripSelects filters on ride type, ride status and payment method. Payment
// methods are whatever the loaded trips use.
func tripSelects(c *gin.Context, records []models.Trip) ([]views.Filter, []func(models.Trip) bool) {
	rideType, status, method := c.Query("type"), c.Query("status"), c.Query("method")

	filters := []views.Filter{
		fixed("type", "Ride type", rideType,
			views.Option{Value: "all", Label: "All types"},
			views.Option{Value: models.RideTypeInstant, Label: "Instant"},
			views.Option{Value: models.RideTypeScheduled, Label: "Scheduled"},
		),
		fixed("status", "Ride status", status,
			views.Option{Value: "all", Label: "All statuses"},
			views.Option{Value: models.RideStatusCompleted, Label: "Completed"},
			views.Option{Value: models.RideStatusCancelled, Label: "Cancelled"},
			views.Option{Value: models.RideStatusPending, Label: "Pending"},
		),
		choices("method", "Payment methods", method, records, func(t models.Trip) string { return t.PaymentMethod }),
	}
	where := []func(models.Trip) bool{
		listview.Equals(rideType, func(t models.Trip) string { return t.RideType }),
		listview.Equals(status, func(t models.Trip) string { return t.RideStatus }),
		listview.Equals(method, func(t models.Trip) string { return t.PaymentMethod }),
	}
	return filters, where
}

// ListTrips renders GET /trips.
func (h *Handler) ListTrips(c *gin.Context) {
	l, ok := readList(h, c, trips)
	if !ok {
		return
	}
	h.render(c, "trips", views.Page{
		Title:   "Trips",
		Nav:     "trips",
		Refresh: refreshIf(l.State == views.StateLoading),
		Data:    l,
	})
}

func (h *Handler) ExportTrips(c *gin.Context) {
	exportList(h, c, trips)
}

// GetTrip renders GET /trips/:id.
func (h *Handler) GetTrip(c *gin.Context) {
	id := c.Param("id")
	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, query.Key{"trip", id}, func(ctx context.Context) (models.Trip, error) {
		return client.Trip(ctx, id)
	})
	if h.unauthorized(c, st.Err) || h.notFound(c, st.Err) {
		return
	}
	d := views.NewDetail(st)
	h.render(c, "trip", views.Page{
		Title:   "Trip",
		Nav:     "trips",
		Refresh: refreshIf(d.Loading),
		Data:    d,
	})
}
