package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders an amount in rupees with Indian digit grouping and
// no fractional part, e.g. 2500000 -> "₹25,00,000".
func FormatPrice(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	digits := strconv.FormatInt(int64(math.Round(math.Abs(amount))), 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

// FormatDate renders a timestamp the way the dashboards show it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2 January 2006, 03:04 pm")
}

// FormatDateTime is the compact form used in notification details.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006, 3:04:05 pm")
}

// TimeAgo renders how long ago t happened relative to now.
func TimeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t) / time.Second)
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return strconv.Itoa(seconds/60) + "m ago"
	case seconds < 86400:
		return strconv.Itoa(seconds/3600) + "h ago"
	default:
		return strconv.Itoa(seconds/86400) + "d ago"
	}
}
