// Package lifecycle holds process lifecycle constants shared by the infra and delivery layers.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps such as the initial
// database ping and the HTTP server drain.
const DefaultTimeout = 10 * time.Second
