package views

import (
	"fmt"
	"html/template"
	"strings"

	"commuta_admin/internal/format"
	"commuta_admin/internal/models"
)

// Funcs are the helpers every template can call. They take any because
// record fields use the coercing types from models.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"phone":    func(v any) string { return format.Phone(text(v)) },
		"date":     func(v any) string { return format.Date(text(v)) },
		"datetime": func(v any) string { return format.DateTime(text(v)) },
		"isodate":  func(v any) string { return format.ISODate(text(v)) },
		"week":     func(v any) string { return format.WeekLabel(text(v)) },
		"naira":    func(v any) string { return format.Naira(number(v)) },
		"count":    func(v any) string { return format.Count(int(number(v))) },
		"rating":   func(v any) string { return format.Rating(number(v)) },
		"yesno":    func(v any) string { return format.YesNo(flag(v)) },
		"check": func(v any) string {
			if flag(v) {
				return "✓"
			}
			return "✗"
		},
		"choose":   func(v any, yes, no string) string { return format.Choose(flag(v), yes, no) },
		"initials": initials,
		"lower":    strings.ToLower,
		"percent":  percent,
		"seq":      seq,
		"skeleton": skeleton,
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func number(v any) float64 {
	switch t := v.(type) {
	case models.Amount:
		return float64(t)
	case models.Count:
		return float64(t)
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}
	return 0
}

func flag(v any) bool {
	switch t := v.(type) {
	case models.Flag:
		return bool(t)
	case bool:
		return t
	}
	return false
}

// seq yields n placeholders for skeleton rows.
func seq(n int) []int { return make([]int, n) }

// Skeleton is the loading placeholder. It takes the shape of the layout it
// stands in for: table rows in table mode, cards otherwise.
type Skeleton struct {
	Table bool
	Rows  []int
}

func skeleton(mode any, rows int) Skeleton {
	return Skeleton{Table: fmt.Sprint(mode) == string(ModeTable), Rows: seq(rows)}
}

func initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(f))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// percent scales v against total for bar heights; a zero total gives 0.
func percent(v, total any) int {
	m := number(total)
	if m <= 0 {
		return 0
	}
	return int(number(v) / m * 100)
}
