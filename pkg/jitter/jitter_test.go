package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, Backoff(time.Second, time.Minute, 0))
	assert.Equal(t, 4*time.Second, Backoff(time.Second, time.Minute, 2))
	assert.Equal(t, 10*time.Second, Backoff(time.Second, 10*time.Second, 8))
}

func TestDurationBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := Duration(time.Second, DefaultJitter)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}
