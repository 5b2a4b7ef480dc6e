package domain

import "time"

// CurrentTimeProvider abstracts the clock so use cases stay testable.
type CurrentTimeProvider interface {
	Now() time.Time
}
