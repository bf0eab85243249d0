package clock

import (
	"time"

	"go.uber.org/fx"
)

// Module provides the system clock.
var Module = fx.Provide(NewSystemClock)

// Clock abstracts time for deterministic tests of day-seeded behavior.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
