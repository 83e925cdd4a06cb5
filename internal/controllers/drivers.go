package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

var drivers = resource[models.Driver]{
	spec:   listview.Drivers,
	key:    query.Key{"drivers"},
	fetch:  func(c *api.Client) func(context.Context) ([]models.Driver, error) { return c.Drivers },
	export: "/drivers/export.csv",
	mode:   views.ModeCards,
}

// ListDrivers renders GET /drivers.
func (h *Handler) ListDrivers(c *gin.Context) {
	l, ok := readList(h, c, drivers)
	if !ok {
		return
	}
	h.render(c, "drivers", views.Page{
		Title:   "Drivers",
		Nav:     "drivers",
		Refresh: refreshIf(l.State == views.StateLoading),
		Data:    l,
	})
}

func (h *Handler) ExportDrivers(c *gin.Context) {
	exportList(h, c, drivers)
}

func driverKey(id string) query.Key { return query.Key{"driver", id} }

// GetDriver renders GET /drivers/:id.
func (h *Handler) GetDriver(c *gin.Context) {
	id := c.Param("id")
	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, driverKey(id), func(ctx context.Context) (models.Driver, error) {
		return client.Driver(ctx, id)
	})
	if h.unauthorized(c, st.Err) || h.notFound(c, st.Err) {
		return
	}
	d := views.NewDriverDetail(st)
	h.render(c, "driver", views.Page{
		Title:   "Driver",
		Nav:     "drivers",
		Refresh: refreshIf(d.Loading),
		Data:    d,
	})
}

// DriverLocation serves GET /drivers/:id/location as a GeoJSON Feature.
func (h *Handler) DriverLocation(c *gin.Context) {
	id := c.Param("id")
	client, scope := h.conn(c)
	driver, err := query.Get(c.Request.Context(), scope, driverKey(id), func(ctx context.Context) (models.Driver, error) {
		return client.Driver(ctx, id)
	})
	if h.unauthorized(c, err) {
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("driver_id", id).Error("driver location read failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	feature, ok := driver.LocationFeature()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No known location for this driver"})
		return
	}
	body, err := json.Marshal(feature)
	if err != nil {
		logrus.WithError(err).WithField("driver_id", id).Error("encode driver location")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}
