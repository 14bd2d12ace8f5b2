package gameloop

import (
	"log/slog"
	"time"
)

// Source provides the current time. The loop only ever subtracts two
// readings, so any monotonic source works. The default is the system clock;
// tests inject a scripted Source via WithSource to drive the loop
// deterministically.
type Source interface {
	Now() time.Time
}

// systemSource is the production Source backed by time.Now, which uses the
// OS monotonic clock for subtraction.
type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// clock samples elapsed wall time between polls.
type clock struct {
	src  Source
	last time.Time
}

func newClock(src Source) *clock {
	return &clock{src: src, last: src.Now()}
}

// Elapsed returns the duration since the previous call, or since construction
// on the first call. A backward jump of the source is clamped to zero and
// logged as a warning; the result is never negative.
func (c *clock) Elapsed() time.Duration {
	now := c.src.Now()
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		Logger().Warn("clock anomaly: backward time source reading clamped to zero",
			slog.Duration("delta", d))
		return 0
	}
	return d
}
