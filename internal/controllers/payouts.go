package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

const (
	tabOwed    = "owed"
	tabHistory = "history"
)

var payoutTabs = []views.Option{
	{Value: tabOwed, Label: "Drivers owed"},
	{Value: tabHistory, Label: "Payment history"},
}

// Mark-as-paid invalidates both keys so the next read of either refetches.
var (
	keyOwed    = query.Key{"payouts"}
	keyHistory = query.Key{"payout-history"}
)

var owed = resource[models.PayoutDriver]{
	spec:   listview.DriversOwed,
	key:    keyOwed,
	fetch:  func(c *api.Client) func(context.Context) ([]models.PayoutDriver, error) { return c.DriversOwed },
	export: "/payouts/export.csv",
	mode:   views.ModeTable,
}

var history = resource[models.PaymentHistory]{
	spec:   listview.PaymentHistory,
	key:    keyHistory,
	fetch:  func(c *api.Client) func(context.Context) ([]models.PaymentHistory, error) { return c.PayoutHistory },
	export: "/payouts/export.csv",
	mode:   views.ModeTable,
}

func payoutTab(c *gin.Context) string {
	if c.Query("tab") == tabHistory {
		return tabHistory
	}
	return tabOwed
}

// Payouts renders GET /payouts. With ?confirm=<driverId> on the owed tab it
// also shows the confirmation step for that driver.
func (h *Handler) Payouts(c *gin.Context) {
	tab := payoutTab(c)
	data := views.Payouts{Tab: tab, Tabs: views.Tabs(c.Request.URL, tab, payoutTabs...)}
	extra := map[string]string{"tab": tab}

	var loading bool
	if tab == tabHistory {
		l, ok := readList(h, c, history)
		if !ok {
			return
		}
		l.Extra = extra
		data.History, loading = l, l.State == views.StateLoading
	} else {
		l, ok := readList(h, c, owed)
		if !ok {
			return
		}
		l.Extra = extra
		data.Owed, loading = l, l.State == views.StateLoading

		if id := c.Query("confirm"); id != "" && !loading {
			data.Confirm = h.owedDriver(c, id)
		}
	}

	h.render(c, "payouts", views.Page{
		Title:   "Payouts",
		Nav:     "payouts",
		Refresh: refreshIf(loading),
		Data:    data,
	})
}

// owedDriver finds id in the cached owed list; the confirm step only offers
// drivers that still have unpaid rides.
func (h *Handler) owedDriver(c *gin.Context, id string) *models.PayoutDriver {
	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, keyOwed, client.DriversOwed)
	for _, d := range st.Data {
		if d.ID.String() == id && len(d.RideIDs) > 0 {
			return &d
		}
	}
	return nil
}

// ExportPayouts serves GET /payouts/export.csv for the tab in the query.
func (h *Handler) ExportPayouts(c *gin.Context) {
	if payoutTab(c) == tabHistory {
		exportList(h, c, history)
		return
	}
	exportList(h, c, owed)
}

// MarkPaid handles POST /payouts/:driverId/mark-paid. The form carries the
// driver's unpaid ride ids. The request is not idempotent; the confirm
// button is disabled after the first submit.
func (h *Handler) MarkPaid(c *gin.Context) {
	in := models.MarkPaidInput{DriverID: strings.TrimSpace(c.Param("driverId"))}
	for _, raw := range c.PostFormArray("rideIds") {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			setFlash(c, "error", "Invalid ride id "+raw)
			c.Redirect(http.StatusSeeOther, "/payouts?tab="+tabOwed)
			return
		}
		in.RideIDs = append(in.RideIDs, id)
	}

	client, scope := h.conn(c)
	err := query.Mutate(c.Request.Context(), scope, in, client.MarkPaid, keyOwed, keyHistory)
	if h.unauthorized(c, err) {
		return
	}

	log := logrus.WithFields(logrus.Fields{"driver_id": in.DriverID, "rides": len(in.RideIDs)})
	if err != nil {
		log.WithError(err).Error("mark as paid failed")
		setFlash(c, "error", err.Error())
	} else {
		log.Info("driver marked as paid")
		setFlash(c, "success", "Payout recorded")
	}
	c.Redirect(http.StatusSeeOther, "/payouts?tab="+tabOwed)
}
