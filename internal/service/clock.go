package service

import (
	"sync"
	"time"
)

// HeightSource supplies the logical height stamped on every ledger
// operation. Heights must be non-decreasing across calls.
type HeightSource interface {
	Height() uint64
}

// WallClock derives the height from wall time in unix seconds, which makes
// the freshness window a real one-hour horizon.
type WallClock struct{}

func (WallClock) Height() uint64 { return uint64(time.Now().Unix()) }

// ManualClock is an operator-driven height source for deterministic runs.
type ManualClock struct {
	mu     sync.Mutex
	height uint64
}

func NewManualClock(start uint64) *ManualClock {
	return &ManualClock{height: start}
}

func (c *ManualClock) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// Set moves the clock forward. Requests to move it backwards are ignored so
// the height stays monotonic.
func (c *ManualClock) Set(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height > c.height {
		c.height = height
	}
}

func (c *ManualClock) Advance(delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += delta
}
