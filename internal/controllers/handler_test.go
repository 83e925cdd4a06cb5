package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commuta_admin/internal/listview"
	"commuta_admin/internal/models"
	"commuta_admin/internal/views"
)

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestListParams(t *testing.T) {
	c, _ := testContext("/riders?q=%20Ada%20&period=24h&page=3")
	p := listParams(c)
	assert.Equal(t, "Ada", p.Query)
	assert.Equal(t, listview.Window24h, p.Window)
	assert.Equal(t, 3, p.Page)

	c, _ = testContext("/riders?page=abc")
	p = listParams(c)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, listview.WindowAll, p.Window)
}

func TestFlash_RoundTrip(t *testing.T) {
	c, w := testContext("/payouts/d1/mark-paid")
	setFlash(c, "error", "Failed to mark payment | retry")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	c, w = testContext("/payouts")
	c.Request.AddCookie(&http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value})
	f := popFlash(c)
	require.NotNil(t, f)
	assert.Equal(t, "error", f.Kind)
	assert.Equal(t, "Failed to mark payment | retry", f.Message)

	expired := w.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)
}

func TestPopFlash_None(t *testing.T) {
	c, _ := testContext("/")
	assert.Nil(t, popFlash(c))
}

func TestChoices(t *testing.T) {
	contacts := []models.Contact{{Category: "Support"}, {Category: "billing"}, {Category: "support"}, {Category: ""}}
	f := choices("category", "Categories", "", contacts, func(c models.Contact) string { return c.Category })
	assert.Equal(t, "all", f.Value)
	assert.Equal(t, []views.Option{
		{Value: "all", Label: "All categories"},
		{Value: "Support", Label: "Support"},
		{Value: "billing", Label: "billing"},
	}, f.Options)
}

func TestTripSelects(t *testing.T) {
	c, _ := testContext("/trips?type=Instant&status=all&method=card")
	trips := []models.Trip{
		{RideID: "1", RideType: "Instant", PaymentMethod: "Card"},
		{RideID: "2", RideType: "Instant", PaymentMethod: "Cash"},
		{RideID: "3", RideType: "Scheduled", PaymentMethod: "Card"},
	}
	filters, where := tripSelects(c, trips)
	require.Len(t, filters, 3)
	assert.Equal(t, "Instant", filters[0].Value)

	got := listview.Trips.Filter(trips, "", listview.WindowAll, testNow, where...)
	require.Len(t, got, 1)
	assert.Equal(t, models.ID("1"), got[0].RideID)
}

func TestRefreshIf(t *testing.T) {
	assert.Equal(t, 0, refreshIf(false))
	assert.Equal(t, loadingRefresh, refreshIf(false, true))
}

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
