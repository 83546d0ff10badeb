// Package clock provides the wall-clock implementation of the Clock service.
package clock

import (
	"time"

	"aegis/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system wall clock.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
