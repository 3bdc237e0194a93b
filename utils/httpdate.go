package utils

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// ErrBadHTTPDate constant is returned when a date string matches no supported format
const ErrBadHTTPDate = "date string is invalid - must be an HTTP date, RFC 3339, 2006-01-02, or unix epoch seconds"

// extra formats tried after the three net/http.ParseTime formats
var httpDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// FormatHTTPDate renders t as an IMF-fixdate, ie "Wed, 21 Oct 2015 07:28:00 GMT".
// The caller's value is not mutated; conversion to UTC happens on a copy.
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// ParseHTTPDate parses a permissive set of date representations: the three
// HTTP date formats, RFC 3339, a bare calendar date, or unix epoch seconds.
func ParseHTTPDate(s string) (time.Time, error) {
	if t, err := http.ParseTime(s); err == nil {
		return t, nil
	}
	for _, layout := range httpDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(epoch, 0).UTC(), nil
	}
	return time.Time{}, errors.New(ErrBadHTTPDate)
}
