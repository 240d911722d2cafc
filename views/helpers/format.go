package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPrice formats cents as dollars (e.g., 1599 -> "$15.99")
func FormatPrice(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(abs/100), abs%100)
}

// Pluralize labels a count, e.g. ("Color", 1) -> "1 Color", ("Color", 3) -> "3 Colors"
func Pluralize(word string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %s", count, pluralForm(word))
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDiscount returns the whole percentage saved, e.g. (16500, 12000) -> "27% off"
func FormatDiscount(price, salePrice int64) string {
	if price <= 0 || salePrice >= price {
		return ""
	}
	percent := (price - salePrice) * 100 / price
	return fmt.Sprintf("%d%% off", percent)
}

func pluralForm(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}

func groupThousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
