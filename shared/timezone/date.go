package timezone

import (
	"busbooking/shared/constant"
	"fmt"
	"strings"
	"time"
)

// Accepted inputs for dates coming from forms or from the bus management API.
var dateLayouts = []string{
	constant.DateFormat,
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	constant.DateTimeFormat,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var timeLayouts = []string{
	constant.TimeFormat,
	time.TimeOnly,
	"3:04 PM",
	"3:04PM",
	"15.04",
}

// ParseDate parses dd-mm-yyyy, ISO-8601 dates and datetimes and a few locale forms.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// NormalizeDate rewrites any accepted date into the dd-mm-yyyy wire format.
func NormalizeDate(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return constant.Empty, err
	}

	return t.Format(constant.DateFormat), nil
}

// DisplayDate formats server dates for display, returning the input untouched when it cannot be parsed.
func DisplayDate(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}

	return t.Format(constant.DateFormat)
}

// NormalizeTime rewrites a clock time into HH:mm.
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(constant.TimeFormat), nil
		}
	}

	return constant.Empty, fmt.Errorf("unrecognized time %q", value)
}

// FormatDateTime renders t as the LocalDateTime string the booking endpoint expects.
func FormatDateTime(t time.Time) string {
	return ToAppTime(t).Format(constant.DateTimeFormat)
}
