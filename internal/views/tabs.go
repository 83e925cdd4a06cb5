package views

import (
	"net/url"

	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
)

// Tab is one entry of a tabbed screen.
type Tab struct {
	Name   string
	Label  string
	URL    string
	Active bool
}

// Tabs links each name to the current path with only tab set; switching
// tabs drops search, filters and page.
func Tabs(u *url.URL, active string, names ...Option) []Tab {
	out := make([]Tab, len(names))
	for i, n := range names {
		link := url.URL{Path: u.Path, RawQuery: url.Values{"tab": {n.Value}}.Encode()}
		out[i] = Tab{Name: n.Value, Label: n.Label, URL: link.String(), Active: n.Value == active}
	}
	return out
}

type Forum struct {
	Tab   string
	Tabs  []Tab
	Users List[models.ForumUser]
	Posts List[models.ForumPost]
}

type Payouts struct {
	Tab     string
	Tabs    []Tab
	Owed    List[models.PayoutDriver]
	History List[models.PaymentHistory]
	// Confirm is the driver whose mark-as-paid is awaiting confirmation.
	Confirm *models.PayoutDriver
}

// Detail wraps a single-record read for the detail screens.
type Detail[T any] struct {
	Loading bool
	Record  T
	Err     string
}

func NewDetail[T any](st query.State[T]) Detail[T] {
	d := Detail[T]{Loading: st.IsLoading, Record: st.Data}
	if st.Err != nil && !st.IsLoading {
		d.Err = st.Err.Error()
	}
	return d
}

// DriverDetail adds the last known position to the driver screen.
type DriverDetail struct {
	Detail[models.Driver]
	HasLocation bool
	Lat, Lng    float64
}

func NewDriverDetail(st query.State[models.Driver]) DriverDetail {
	d := DriverDetail{Detail: NewDetail(st)}
	if d.Loading || d.Err != "" {
		return d
	}
	if pt, ok := d.Record.Location(); ok {
		d.HasLocation = true
		d.Lng, d.Lat = pt.X(), pt.Y()
	}
	return d
}
