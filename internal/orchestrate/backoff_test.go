package orchestrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBackoffDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextBackoffDelay(0))
	assert.Equal(t, 2*time.Second, nextBackoffDelay(1))
	assert.Equal(t, 4*time.Second, nextBackoffDelay(2))
	assert.Equal(t, 8*time.Second, nextBackoffDelay(3))
	assert.Equal(t, 16*time.Second, nextBackoffDelay(4))
	// Capped from here on.
	assert.Equal(t, 30*time.Second, nextBackoffDelay(5))
	assert.Equal(t, 30*time.Second, nextBackoffDelay(12))
}
