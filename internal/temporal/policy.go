// Package temporal is the single source of truth for interval semantics:
// what "current" means, how an interval is closed, and how a new one is
// opened. Repositories never hard-code the sentinel date themselves.
package temporal

import (
	"fmt"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
)

// SentinelMax is the reserved date meaning "open / still in effect".
const SentinelMax = "9999-01-01"

// DateLayout is the canonical boundary format for all dates.
const DateLayout = "2006-01-02"

// epochMillisCutoff disambiguates all-digit inputs: values above it are
// treated as Unix milliseconds, at or below as seconds.
const epochMillisCutoff = int64(1e10)

// Layouts accepted by NormalizeDate, tried in order. Ambiguous slash
// dates resolve in favor of MM/DD/YYYY because it is tried first.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"01/02/2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
}

// Record is the value-object shape shared by every temporal assignment
// stream. It carries no persistence identity beyond its natural key parts.
type Record struct {
	FromDate string
	ToDate   string
}

// NormalizeDate parses a date or timestamp string in one of the supported
// formats and returns the calendar date as a YYYY-MM-DD string. All-digit
// inputs are read as Unix epoch seconds, or milliseconds when the value
// exceeds 10^10. Unrecognized input fails with an invalid-date error;
// there is deliberately no fallback to the raw string.
func NormalizeDate(input string) (string, error) {
	if input == "" {
		return "", domain.NewError(domain.KindInvalidDate,
			"date must be a non-empty string")
	}

	if secs, ok := allDigits(input); ok {
		t := time.Unix(secs, 0).UTC()
		if secs > epochMillisCutoff {
			t = time.UnixMilli(secs).UTC()
		}
		return t.Format(DateLayout), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Format(DateLayout), nil
		}
	}

	return "", domain.NewError(domain.KindInvalidDate,
		fmt.Sprintf("date/time %q is not in a recognized format", input))
}

// FormatDate renders a time as a boundary date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsCurrent reports whether the record's interval is still open.
func IsCurrent(r Record) bool {
	return r.ToDate == SentinelMax
}

// CloseInterval sets the record's to_date to the boundary date. It fails
// with an invalid-date error when the boundary cannot be normalized, and
// with a policy violation when the boundary precedes the interval's start.
func CloseInterval(r *Record, boundaryDate string) error {
	boundary, err := NormalizeDate(boundaryDate)
	if err != nil {
		return err
	}
	if boundary < r.FromDate {
		return domain.NewError(domain.KindPolicy,
			fmt.Sprintf("boundary date %s precedes interval start %s", boundary, r.FromDate))
	}
	r.ToDate = boundary
	return nil
}

// OpenInterval constructs a new open record value. An empty toDate opens
// the interval with the sentinel; an explicit toDate is normalized and
// validated against fromDate. Nothing is persisted here.
func OpenInterval(fromDate, toDate string) (Record, error) {
	from, err := NormalizeDate(fromDate)
	if err != nil {
		return Record{}, err
	}

	to := SentinelMax
	if toDate != "" {
		to, err = NormalizeDate(toDate)
		if err != nil {
			return Record{}, err
		}
	}
	if to < from {
		return Record{}, domain.NewError(domain.KindPolicy,
			fmt.Sprintf("to_date %s precedes from_date %s", to, from))
	}

	return Record{FromDate: from, ToDate: to}, nil
}

func allDigits(s string) (int64, bool) {
	if s == "" || len(s) > 18 {
		return 0, false
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
