// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown of delivery servers and client
// connections during fx OnStop hooks.
const DefaultTimeout = 10 * time.Second
