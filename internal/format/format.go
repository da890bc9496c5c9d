package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtArea formats square footage with a metric companion.
// Example: FmtArea(215.28) => "215.3 sq ft (20.0 m²)"
func FmtArea(sqft float64) string {
	const sqftPerSqm = 10.7639
	return fmt.Sprintf("%.1f sq ft (%.1f m²)", sqft, sqft/sqftPerSqm)
}

// FmtCurrency formats whole-cent amounts in US dollars.
// Example: FmtCurrency(123456) => "$1,234.56"
func FmtCurrency(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	major := cents / 100
	minor := cents % 100
	out := fmt.Sprintf("$%s.%02d", thousandSep(major), minor)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var out strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

// FmtDate formats time in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "es":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
