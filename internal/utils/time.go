package utils

import (
	"strings"
	"time"
)

const (
	layoutDate      = "2006-01-02"
	layoutMonthDay  = "01/02"
	layoutCompactDt = "20060102"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseOptionalDate returns nil for blank input.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatMonthDay formats time as MM/DD, the way carrier PDFs print dates.
func FormatMonthDay(t time.Time) string {
	return t.In(time.Local).Format(layoutMonthDay)
}

// FormatCompactDate formats time as YYYYMMDD.
func FormatCompactDate(t time.Time) string {
	return t.In(time.Local).Format(layoutCompactDt)
}
