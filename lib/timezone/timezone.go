package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/London")
	if err != nil {
		panic(err)
	}
}

// force timezone to be in London regardless of where the job runs since
// the session cutover time is defined in the organiser's local time and
// hosted runners can end up anywhere
func Now() time.Time {
	return time.Now().In(Location)
}

// Clock is the interface anything depending on the system clock should use,
// so that date resolution stays testable.
type Clock interface {
	// Now returns the current time in the organiser's timezone.
	Now() time.Time
}

// StandardClock implements Clock using the standard library.
type StandardClock struct{}

func NewStandardClock() StandardClock {
	return StandardClock{}
}

func (StandardClock) Now() time.Time {
	return Now()
}
