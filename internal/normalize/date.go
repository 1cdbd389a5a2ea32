package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const isoLayout = "2006-01-02"

var (
	isoDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ]\d{2}:\d{2}`)
	isoDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Indian court feeds are day-first without exception.
	numericDMY = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{4}|\d{2})(?:[ T]\d{1,2}:\d{2}.*)?$`)
	textualDMY = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)?[\s\-/.,]+([a-z]+)\.?[\s\-/.,]+(\d{4})$`)

	ordinalSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	weekdayPrefix = regexp.MustCompile(`(?i)^(?:mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun)(?:day|nesday|urday)?\.?,?\s*`)

	// dateparse reads bare digit runs as unix timestamps; only yyyymmdd is a date here.
	digitsOnly = regexp.MustCompile(`^\d+$`)
)

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Date normalizes a provider date string to YYYY-MM-DD. Null placeholders,
// unparseable text and calendar-invalid dates all yield nil.
func Date(raw string) *string {
	s := Clean(raw)
	if IsNull(s) {
		return nil
	}

	if m := isoDateTime.FindStringSubmatch(s); m != nil {
		return validISO(m[1])
	}
	if isoDate.MatchString(s) {
		return validISO(s)
	}
	if d, matched := dayFirst(s); matched {
		return d
	}
	return fallback(s)
}

// dayFirst handles the numeric and textual day-month-year shapes. matched
// reports whether s had one of those shapes at all.
func dayFirst(s string) (*string, bool) {
	if m := numericDMY.FindStringSubmatch(s); m != nil {
		return fromParts(m[1], m[2], m[3]), true
	}
	if m := textualDMY.FindStringSubmatch(s); m != nil {
		month, ok := months[strings.ToLower(m[2])]
		if !ok {
			return nil, true
		}
		return fromParts(m[1], strconv.Itoa(int(month)), m[3]), true
	}
	return nil, false
}

func fallback(s string) *string {
	s = weekdayPrefix.ReplaceAllString(s, "")
	s = ordinalSuffix.ReplaceAllString(s, "$1")
	if d, matched := dayFirst(s); matched {
		return d
	}
	return parseAny(s)
}

// parseAny is the last resort for shapes the day-first patterns do not
// cover. Ambiguous numerics are still read day-first.
func parseAny(s string) *string {
	if digitsOnly.MatchString(s) && len(s) != len("20060102") {
		return nil
	}
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	return checked(t.Year(), int(t.Month()), t.Day())
}

func validISO(s string) *string {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return nil
	}
	return checked(t.Year(), int(t.Month()), t.Day())
}

func fromParts(day, month, year string) *string {
	d, err := strconv.Atoi(day)
	if err != nil {
		return nil
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return nil
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return nil
	}
	if len(year) == 2 {
		y += 2000
	}
	return checked(y, m, d)
}

// checked rejects dates that do not survive a round trip through time.Date,
// such as 31 February, and years outside what court records can carry.
func checked(year, month, day int) *string {
	if year < 1900 || year > 2199 || month < 1 || month > 12 || day < 1 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return nil
	}
	s := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	return &s
}
