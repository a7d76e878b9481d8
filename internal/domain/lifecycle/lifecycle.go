// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
