// Package listview derives what a list screen shows from the full record
// set: time window, free-text search, extra selects, the current page, and
// the CSV export of everything that passed the filters.
package listview

import (
	"strings"
	"time"
)

// Window is the coarse recency filter applied before search.
type Window string

const (
	WindowAll Window = "all"
	Window24h Window = "24h"
)

// ParseWindow accepts "24h" and the older "24"; anything else means all.
func ParseWindow(s string) Window {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "24h", "24":
		return Window24h
	}
	return WindowAll
}

// Spec describes one resource's list screen.
type Spec[T any] struct {
	// Resource names the export file: "<Resource>-export.csv".
	Resource string
	// SearchFields are matched case-insensitively; any match passes.
	SearchFields func(T) []string
	// TimeField feeds the 24h window. A nil TimeField disables the window.
	TimeField func(T) time.Time
	Columns   []Column[T]
	PageSize  int
}

type Params struct {
	Query  string
	Window Window
	// Page is 1-based and is not clamped here; callers disable navigation
	// past either end and reset to 1 when the query changes.
	Page int
	// PageSize overrides Spec.PageSize when positive.
	PageSize int
}

type Result[T any] struct {
	Filtered   []T
	Page       []T
	PageNumber int
	PageSize   int
	TotalPages int
}

func (r Result[T]) HasPrev() bool { return r.PageNumber > 1 }
func (r Result[T]) HasNext() bool { return r.PageNumber < r.TotalPages }

// Run filters records and slices the requested page. where holds extra
// resource-specific selects that must all pass.
func (s Spec[T]) Run(records []T, p Params, now time.Time, where ...func(T) bool) Result[T] {
	size := p.PageSize
	if size <= 0 {
		size = s.PageSize
	}
	if size <= 0 {
		size = 10
	}
	page := p.Page
	if page == 0 {
		page = 1
	}

	filtered := s.Filter(records, p.Query, p.Window, now, where...)
	return Result[T]{
		Filtered:   filtered,
		Page:       Paginate(filtered, page, size),
		PageNumber: page,
		PageSize:   size,
		TotalPages: TotalPages(len(filtered), size),
	}
}

// Filter applies the window, the selects and then the search query.
func (s Spec[T]) Filter(records []T, query string, w Window, now time.Time, where ...func(T) bool) []T {
	cutoff := now.Add(-24 * time.Hour)
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if w == Window24h && s.TimeField != nil && !s.TimeField(r).After(cutoff) {
			continue
		}
		if !all(r, where) {
			continue
		}
		if q != "" && !s.matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s Spec[T]) matches(r T, q string) bool {
	if s.SearchFields == nil {
		return false
	}
	for _, f := range s.SearchFields(r) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func all[T any](r T, preds []func(T) bool) bool {
	for _, p := range preds {
		if p != nil && !p(r) {
			return false
		}
	}
	return true
}

// TotalPages is ceil(n/size), at least 1.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns records[(page-1)*size : page*size] bounded to the slice.
// A page past the end is empty.
func Paginate[T any](records []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	// compare pages before multiplying so a huge page cannot overflow
	if page-1 >= TotalPages(len(records), size) {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Equals builds a select that passes when want is "all"/"" or matches field
// case-insensitively.
func Equals[T any](want string, field func(T) string) func(T) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return nil
	}
	return func(r T) bool { return strings.EqualFold(field(r), want) }
}
