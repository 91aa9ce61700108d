package monitor

import (
	"sessionwatch/lib/timezone"
	"time"
)

// the activity runs every Saturday; at 14:30 the session is underway and
// the interesting occurrence becomes next week's
const cutoverHour = 14
const cutoverMinute = 30

// TargetSaturday resolves the occurrence the current run cares about. On a
// Saturday before the cutover that is today, afterwards it is seven days
// out. On any other weekday it is the next upcoming Saturday. The result
// is always a Saturday at midnight, between zero and seven days ahead.
func TargetSaturday(now time.Time) time.Time {
	now = now.In(timezone.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location)

	if now.Weekday() == time.Saturday {
		beforeCutover := now.Hour() < cutoverHour ||
			(now.Hour() == cutoverHour && now.Minute() < cutoverMinute)
		if beforeCutover {
			return today
		}
		return today.AddDate(0, 0, 7)
	}

	ahead := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	return today.AddDate(0, 0, ahead)
}
