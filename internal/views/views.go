// Package views holds the view models the screens render and the embedded
// templates that render them.
package views

import (
	"net/url"
	"strconv"

	"commuta_admin/internal/listview"
	"commuta_admin/internal/query"
)

// State is derived only from whether a fetch is outstanding and how many
// records passed the filters.
type State string

const (
	StateLoading   State = "loading"
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
)

func StateOf(isLoading bool, n int) State {
	switch {
	case isLoading:
		return StateLoading
	case n == 0:
		return StateEmpty
	}
	return StatePopulated
}

// Mode is the list layout; both show the same fields.
type Mode string

const (
	ModeCards Mode = "cards"
	ModeTable Mode = "table"
)

// ParseMode falls back to def for anything but "cards" or "table".
func ParseMode(s string, def Mode) Mode {
	switch Mode(s) {
	case ModeCards, ModeTable:
		return Mode(s)
	}
	return def
}

// Pager drives the previous/next controls. An empty URL means the control
// is disabled.
type Pager struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

func NewPager(u *url.URL, page, totalPages int) Pager {
	p := Pager{
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = With(u, "page", strconv.Itoa(page-1))
	}
	if p.HasNext {
		p.NextURL = With(u, "page", strconv.Itoa(page+1))
	}
	return p
}

// With returns u's path and query with key set to value. An empty value
// removes the key.
func With(u *url.URL, key, value string) string {
	q := u.Query()
	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}

// Option is one entry of a filter select.
type Option struct {
	Value string
	Label string
}

// Filter is a resource-specific select in the list toolbar.
type Filter struct {
	Name    string
	Label   string
	Value   string
	Options []Option
}

// List is the view model of every list screen.
type List[T any] struct {
	State  State
	Mode   Mode
	Items  []T
	Total  int
	Pager  Pager
	Query  string
	Window listview.Window
	// Extra holds query parameters the toolbar form must carry along, such
	// as the active tab.
	Extra   map[string]string
	Filters []Filter

	CardsURL  string
	TableURL  string
	ExportURL string
	CanExport bool
	// Err is the message of a failed read, shown as an inline banner.
	Err string
}

// NewList builds the list view model from a cache read and the pipeline
// result computed over its data.
func NewList[T any](st query.State[[]T], res listview.Result[T], p listview.Params, mode Mode, u *url.URL, exportPath string) List[T] {
	l := List[T]{
		State:  StateOf(st.IsLoading, len(res.Filtered)),
		Mode:   mode,
		Items:  res.Page,
		Total:  len(res.Filtered),
		Pager:  NewPager(u, res.PageNumber, res.TotalPages),
		Query:  p.Query,
		Window: p.Window,

		CardsURL:  With(u, "view", string(ModeCards)),
		TableURL:  With(u, "view", string(ModeTable)),
		CanExport: !st.IsLoading && len(res.Filtered) > 0,
	}
	if l.CanExport {
		export := url.URL{Path: exportPath, RawQuery: u.RawQuery}
		l.ExportURL = export.String()
	}
	if st.Err != nil && !st.IsLoading {
		l.Err = st.Err.Error()
	}
	return l
}

// Flash is a one-shot notification shown after a redirect.
type Flash struct {
	Kind    string
	Message string
}

// Page is what the layout templates receive.
type Page struct {
	Title string
	// Nav is the active sidebar entry.
	Nav   string
	Flash *Flash
	// Refresh reloads the page after that many seconds while a read is
	// still loading.
	Refresh int
	Error   string
	Data    any
}
