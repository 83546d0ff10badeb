package service

import "time"

// Clock abstracts wall-clock access so expiry and lockout arithmetic can be
// driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}
