package organiser

import (
	"bytes"
	"regexp"
	"sessionwatch/lib/htmlutil"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Session is one parsed entry from the organiser page. Date is the zero
// value when the title carried no parseable date.
type Session struct {
	Description    string
	CurrentSignups int
	MaxSignups     int
	Date           time.Time
}

var saturdayRegex = regexp.MustCompile(`(?i)\bSat(?:urday)?\b`)
var bookingsRegex = regexp.MustCompile(`BOOKINGS:\s*(\d+)\s*/\s*(\d+)`)

// ExtractSessions pulls one Session out of every collapsible-section title
// that mentions Saturday and carries a bookings counter, in source order.
// Sections missing either are skipped silently, the page mixes in weekday
// sessions and plain announcements.
func ExtractSessions(markup []byte, now time.Time) ([]Session, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var sessions []Session
	for _, node := range doc.Find("div.su-spoiler-title").Nodes {
		text := htmlutil.CleanText(htmlutil.GetText(node))

		if !saturdayRegex.MatchString(text) {
			continue
		}
		groups := bookingsRegex.FindStringSubmatch(text)
		if len(groups) < 3 {
			continue
		}

		current, err := strconv.Atoi(groups[1])
		if err != nil {
			continue
		}
		max, err := strconv.Atoi(groups[2])
		if err != nil {
			continue
		}

		date, _ := ParseSessionDate(text, now)
		sessions = append(sessions, Session{
			Description:    text,
			CurrentSignups: current,
			MaxSignups:     max,
			Date:           date,
		})
	}

	return sessions, nil
}
