package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
// Day boundaries are local midnight, so Now reports local time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
