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

var contacts = resource[models.Contact]{
	spec:    listview.Contacts,
	key:     query.Key{"contacts"},
	fetch:   func(c *api.Client) func(context.Context) ([]models.Contact, error) { return c.Contacts },
	export:  "/contacts/export.csv",
	mode:    views.ModeTable,
	selects: func(c *gin.Context, records []models.Contact) ([]views.Filter, []func(models.Contact) bool) {
		category := c.Query("category")
		field := func(m models.Contact) string { return m.Category }
		return []views.Filter{choices("category", "Categories", category, records, field)},
			[]func(models.Contact) bool{listview.Equals(category, field)}
	},
}

// ListContacts renders GET /contacts.
func (h *Handler) ListContacts(c *gin.Context) {
	l, ok := readList(h, c, contacts)
	if !ok {
		return
	}
	h.render(c, "contacts", views.Page{
		Title:   "Contact messages",
		Nav:     "contacts",
		Refresh: refreshIf(l.State == views.StateLoading),
		Data:    l,
	})
}

func (h *Handler) ExportContacts(c *gin.Context) {
	exportList(h, c, contacts)
}
