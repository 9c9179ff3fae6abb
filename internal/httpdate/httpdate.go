// Package httpdate formats timestamps the way HTTP headers want them.
package httpdate

import "time"

// Layout is the HTTP-date form used by Date and Last-Modified headers:
// abbreviated weekday, day, abbreviated month, year, HH:MM:SS, timezone.
// The GMT suffix is literal; Format always converts to UTC first.
const Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Format renders t as an HTTP date in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// FormatUnix renders a Unix timestamp (seconds) as an HTTP date in UTC.
func FormatUnix(secs int64) string {
	return Format(time.Unix(secs, 0))
}
