// Package lifecycle holds process-wide shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of each delivery.
const DefaultTimeout = 30 * time.Second
