// Package lifecycle holds values shared by components that start and stop with the application.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers and connections.
const DefaultTimeout = 10 * time.Second
