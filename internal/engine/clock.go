package engine

import "time"

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Clock delivers frame ticks to Scheduler.Run.
type Clock interface {
	Ticks() <-chan time.Time
	Stop()
}

// FrameInterval returns the time between frames at the given rate.
// Non-positive rates fall back to DefaultFPS.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// TickerClock is a Clock backed by time.Ticker. A ticker drops ticks when
// the receiver falls behind, so a slow frame never queues extra frames.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock starts a ticker at the given frame rate.
func NewTickerClock(fps int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(FrameInterval(fps))}
}

// Ticks returns the tick channel.
func (c *TickerClock) Ticks() <-chan time.Time {
	return c.ticker.C
}

// Stop stops the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
