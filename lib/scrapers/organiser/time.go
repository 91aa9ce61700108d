package organiser

import (
	"regexp"
	"sessionwatch/lib/timezone"
	"strconv"
	"strings"
	"time"
)

var monthAbbrevs = []string{
	"jan",
	"feb",
	"mar",
	"apr",
	"may",
	"jun",
	"jul",
	"aug",
	"sep",
	"oct",
	"nov",
	"dec",
}

func parseMonth(text string) time.Month {
	text = strings.ToLower(text)
	for i, month := range monthAbbrevs {
		if month == text {
			return time.January + time.Month(i)
		}
	}
	return -1
}

var sessionDateRegex = regexp.MustCompile(`(?i)\bSat\s+(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)

// ParseSessionDate scans title text for a "Sat <day> <month>" pattern and
// resolves it against now's year. The second return is false when there is
// no match or the day/month pair is not a real calendar date.
//
// A session scraped in late December for an early January occurrence comes
// out a year off. The page never lists sessions that far ahead, so this is
// left alone.
func ParseSessionDate(text string, now time.Time) (time.Time, bool) {
	groups := sessionDateRegex.FindStringSubmatch(text)
	if len(groups) < 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(groups[1])
	if err != nil {
		return time.Time{}, false
	}
	month := parseMonth(groups[2])

	date := time.Date(now.Year(), month, day, 0, 0, 0, 0, timezone.Location)
	// time.Date normalizes out-of-range values, "Sat 30 Feb" rolls into
	// March, so a changed day or month means the date never existed
	if date.Day() != day || date.Month() != month {
		return time.Time{}, false
	}
	return date, true
}
