package gameloop

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource replays a fixed sequence of deltas, one per Now call. Once the
// script is exhausted time stands still. The leading zero accounts for the
// sample taken at clock construction.
type scriptSource struct {
	now    time.Time
	deltas []time.Duration
}

func newScriptSource(deltas ...time.Duration) *scriptSource {
	return &scriptSource{
		now:    time.Unix(0, 0),
		deltas: append([]time.Duration{0}, deltas...),
	}
}

func (s *scriptSource) Now() time.Time {
	if len(s.deltas) > 0 {
		s.now = s.now.Add(s.deltas[0])
		s.deltas = s.deltas[1:]
	}
	return s.now
}

func TestClock_Elapsed(t *testing.T) {
	t.Parallel()

	src := newScriptSource(16*time.Millisecond, 33*time.Millisecond, 0)
	c := newClock(src)

	assert.Equal(t, 16*time.Millisecond, c.Elapsed())
	assert.Equal(t, 33*time.Millisecond, c.Elapsed())
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

func TestClock_ElapsedSystemSource(t *testing.T) {
	t.Parallel()

	c := newClock(systemSource{})
	for i := 0; i < 10; i++ {
		assert.GreaterOrEqual(t, c.Elapsed(), time.Duration(0))
	}
}

func TestClock_BackwardJumpClampedAndLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	src := newScriptSource(16*time.Millisecond, -5*time.Millisecond, 16*time.Millisecond)
	c := newClock(src)

	assert.Equal(t, 16*time.Millisecond, c.Elapsed())

	// The anomaly is clamped to zero, logged, and never surfaced as an error.
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.Contains(t, buf.String(), "clock anomaly")

	// The clock keeps working from the rewound reading.
	require.Equal(t, 16*time.Millisecond, c.Elapsed())
}
