// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds how long startup and shutdown hooks may run.
const DefaultTimeout = 10 * time.Second
