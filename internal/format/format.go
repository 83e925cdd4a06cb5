// Package format turns raw API field values into display strings.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"commuta_admin/internal/models"
)

var printer = message.NewPrinter(language.English)

// Phone renders a digit string as "+234 803 123 4567". Short input is
// rendered with whatever groups it has.
func Phone(digits string) string {
	digits = strings.TrimPrefix(strings.TrimSpace(digits), "+")
	if digits == "" {
		return ""
	}
	groups := []string{part(digits, 0, 3), part(digits, 3, 6), part(digits, 6, 9), part(digits, 9, len(digits))}
	var b strings.Builder
	b.WriteByte('+')
	for i, g := range groups {
		if g == "" {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g)
	}
	return b.String()
}

func part(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Date renders an ISO timestamp as "15 Jan 2024". Unparseable input is
// returned unchanged.
func Date(iso string) string {
	return layout(iso, "2 Jan 2006")
}

// DateTime renders "15 Jan 2024, 14:05".
func DateTime(iso string) string {
	return layout(iso, "2 Jan 2006, 15:04")
}

// ISODate renders "2024-01-15".
func ISODate(iso string) string {
	return layout(iso, "2006-01-02")
}

func layout(iso, l string) string {
	t, ok := models.ParseTime(iso)
	if !ok {
		return iso
	}
	return t.Format(l)
}

// WeekLabel turns an ISO week key ("2024-W03") into the date of that week's
// Monday ("15 Jan"). Anything else is returned unchanged.
func WeekLabel(key string) string {
	monday, ok := ISOWeekStart(key)
	if !ok {
		return key
	}
	return monday.Format("2 Jan")
}

// ISOWeekStart parses "YYYY-Www" (or "YYYY-Www-D") and returns the Monday of that week in UTC.
func ISOWeekStart(key string) (time.Time, bool) {
	key = strings.TrimSpace(key)
	year, rest, ok := strings.Cut(key, "-W")
	if !ok || len(year) != 4 {
		return time.Time{}, false
	}
	if w, _, found := strings.Cut(rest, "-"); found {
		rest = w
	}
	y, errY := strconv.Atoi(year)
	w, errW := strconv.Atoi(rest)
	if errY != nil || errW != nil || w < 1 || w > 53 {
		return time.Time{}, false
	}
	// Jan 4th is always in week 1.
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)
	monday := week1.AddDate(0, 0, (w-1)*7)
	if _, iw := monday.ISOWeek(); iw != w {
		return time.Time{}, false
	}
	return monday, true
}

// Naira renders an amount as "₦12,500" or "₦12,500.50".
func Naira(amount float64) string {
	if amount == float64(int64(amount)) {
		return printer.Sprintf("₦%d", int64(amount))
	}
	return printer.Sprintf("₦%.2f", amount)
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Rating renders one decimal place.
func Rating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// YesNo renders a flag for exports.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Choose picks between two labels on a flag, e.g. Active/Inactive.
func Choose(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
