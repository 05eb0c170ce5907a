// Package lifecycle holds process-wide lifecycle constants shared by servers and infrastructure.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown.
const DefaultTimeout = 15 * time.Second
