package monitor

import (
	"fmt"
	"time"
)

// the signup pages are numbered sequentially, one per week; this anchor
// pins the mapping from occurrence date to page number
var referenceDate = time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)

const referenceNumber = 59

// SignupLink derives the signup page url for an occurrence date. The date
// must be on the weekly Saturday cadence, the caller guarantees that. The
// sequence number is unbounded in both directions, dates before the anchor
// simply count down.
func SignupLink(date time.Time, baseUrl string) string {
	// normalize to UTC midnight so DST transitions cannot shave the
	// difference below a whole number of days
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	days := int(d.Sub(referenceDate).Hours() / 24)
	weeks := days / 7
	if days < 0 && days%7 != 0 {
		weeks--
	}

	return fmt.Sprintf("%s%d/", baseUrl, referenceNumber+weeks)
}
