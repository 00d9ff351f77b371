// Package webutil holds the formatting helpers used by the server-rendered pages.
package webutil

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	dateLayout      = "Jan 2, 2006, 03:04 PM"
	timestampLayout = "Jan 2, 2006, 03:04:05 PM"
	recentWindow    = 7 * 24 * time.Hour
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML escapes the five HTML-significant characters
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// FormatDate renders t as e.g. "Mar 4, 2024, 09:15 AM"
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders t with seconds and, for entries younger than a
// week, a relative "N units ago" annotation.
func FormatTimestamp(t, now time.Time) string {
	full := t.Format(timestampLayout)

	age := now.Sub(t)
	if age < 0 || age >= recentWindow {
		return full
	}

	return full + `<br><small style="color: #3b82f6; font-weight: 600;">` + relativeAge(age) + `</small>`
}

func relativeAge(age time.Duration) string {
	mins := int(age / time.Minute)
	hours := int(age / time.Hour)
	days := int(age / (24 * time.Hour))

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return plural(mins, "min")
	case hours < 24:
		return plural(hours, "hour")
	default:
		return plural(days, "day")
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// FormData flattens submitted form values. The last value of a repeated key wins.
func FormData(values url.Values) map[string]string {
	data := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		data[key] = vals[len(vals)-1]
	}
	return data
}
