package views

import (
	"commuta_admin/internal/format"
	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
)

// Periods are the summary windows the overview offers, in days.
var Periods = []int{7, 30, 90}

// ParsePeriod accepts only one of Periods and falls back to 7.
func ParsePeriod(days int) int {
	for _, p := range Periods {
		if p == days {
			return p
		}
	}
	return Periods[0]
}

type TrendBar struct {
	Label   string
	Riders  int
	Drivers int
}

type Overview struct {
	Period  int
	Periods []int
	Loading bool
	Summary *models.Summary
	Trends  []TrendBar
	// TrendMax is the tallest bar; heights are relative to it.
	TrendMax int
}

func NewOverview(st query.State[models.Summary], period int) Overview {
	o := Overview{Period: period, Periods: Periods, Loading: st.IsLoading}
	if st.IsLoading || st.Err != nil {
		return o
	}
	sum := st.Data
	o.Summary = &sum
	for _, t := range sum.Trends {
		label := t.Label
		if _, ok := format.ISOWeekStart(t.Date); ok {
			label = format.WeekLabel(t.Date)
		} else if label == "" {
			label = t.Date
		}
		bar := TrendBar{Label: label, Riders: int(t.Riders), Drivers: int(t.Drivers)}
		o.TrendMax = max(o.TrendMax, bar.Riders, bar.Drivers)
		o.Trends = append(o.Trends, bar)
	}
	return o
}
