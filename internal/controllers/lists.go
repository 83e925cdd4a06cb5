package controllers

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

// resource ties a list screen to its cache key, API read and export path.
type resource[T any] struct {
	spec   listview.Spec[T]
	key    query.Key
	fetch  func(*api.Client) func(context.Context) ([]T, error)
	export string
	mode   views.Mode
	// selects builds the toolbar filters from the loaded records and the
	// predicates matching the current request.
	selects func(c *gin.Context, records []T) ([]views.Filter, []func(T) bool)
}

func (r resource[T]) where(c *gin.Context, records []T) ([]views.Filter, []func(T) bool) {
	if r.selects == nil {
		return nil, nil
	}
	return r.selects(c, records)
}

// readList loads, filters and pages r for the current request. It returns
// false when the response has already been written.
func readList[T any](h *Handler, c *gin.Context, r resource[T]) (views.List[T], bool) {
	client, scope := h.conn(c)
	st := query.Use(c.Request.Context(), scope, r.key, r.fetch(client))
	if h.unauthorized(c, st.Err) {
		return views.List[T]{}, false
	}

	filters, where := r.where(c, st.Data)
	p := listParams(c)
	res := r.spec.Run(st.Data, p, h.now(), where...)
	l := views.NewList(st, res, p, views.ParseMode(c.Query("view"), r.mode), c.Request.URL, r.export)
	l.Filters = filters
	return l, true
}

// exportList writes the filtered set of r as CSV. An empty set is 204.
func exportList[T any](h *Handler, c *gin.Context, r resource[T]) {
	client, scope := h.conn(c)
	records, err := query.Get(c.Request.Context(), scope, r.key, r.fetch(client))
	if h.unauthorized(c, err) {
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("resource", r.spec.Resource).Error("export read failed")
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	_, where := r.where(c, records)
	p := listParams(c)
	filtered := r.spec.Filter(records, p.Query, p.Window, h.now(), where...)

	body, err := r.spec.CSV(filtered)
	if errors.Is(err, listview.ErrNothingToExport) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("resource", r.spec.Resource).Error("export encode failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+r.spec.Filename()+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// choices builds a select whose options are the distinct non-empty values
// of field, sorted, after an "All" entry.
func choices[T any](name, label, current string, records []T, field func(T) string) views.Filter {
	seen := map[string]bool{}
	var values []string
	for _, r := range records {
		v := strings.TrimSpace(field(r))
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		values = append(values, v)
	}
	slices.Sort(values)

	opts := []views.Option{{Value: "all", Label: "All " + strings.ToLower(label)}}
	for _, v := range values {
		opts = append(opts, views.Option{Value: v, Label: v})
	}
	return fixed(name, label, current, opts...)
}

// fixed is a select over a known option list. current defaults to "all".
func fixed(name, label, current string, opts ...views.Option) views.Filter {
	if current == "" {
		current = "all"
	}
	return views.Filter{Name: name, Label: label, Value: current, Options: opts}
}

func refreshIf(loading ...bool) int {
	if slices.Contains(loading, true) {
		return loadingRefresh
	}
	return 0
}
