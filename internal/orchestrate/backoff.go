package orchestrate

import (
	"math"
	"time"
)

// Refresh retry pacing.
const (
	backoffInitialDelay = 2 * time.Second
	backoffMultiplier   = 2.0
	backoffMaxDelay     = 30 * time.Second
)

// nextBackoffDelay returns the delay before retry attempt N (1-based).
func nextBackoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return backoffInitialDelay
	}
	delay := float64(backoffInitialDelay) * math.Pow(backoffMultiplier, float64(attempt-1))
	if delay > float64(backoffMaxDelay) {
		delay = float64(backoffMaxDelay)
	}
	return time.Duration(delay)
}
