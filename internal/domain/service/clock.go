package service

import "time"

// Clock abstracts the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now in UTC.
type SystemClock struct{}

// NewSystemClock returns the production clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
