package timing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmul/timing"
)

func TestMeasure_ReturnsResultAndElapsed(t *testing.T) {
	out, secs := timing.Measure(func() int { return 42 })
	assert.Equal(t, 42, out)
	assert.GreaterOrEqual(t, secs, 0.0)
}

func TestMeasure_CoversTheCall(t *testing.T) {
	const nap = 20 * time.Millisecond
	_, secs := timing.Measure(func() struct{} {
		time.Sleep(nap)
		return struct{}{}
	})
	assert.GreaterOrEqual(t, secs, nap.Seconds())
}

func TestMeasureErr_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	out, secs, err := timing.MeasureErr(func() (string, error) { return "partial", boom })
	require.Same(t, boom, err)
	assert.Equal(t, "partial", out)
	assert.GreaterOrEqual(t, secs, 0.0)

	out, _, err = timing.MeasureErr(func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestMeasure_PanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "kaboom", func() {
		timing.Measure(func() int { panic("kaboom") })
	})
}

func TestStopwatch(t *testing.T) {
	sw := timing.Start()
	time.Sleep(time.Millisecond)
	d := sw.Duration()
	assert.GreaterOrEqual(t, d, time.Millisecond)
	assert.GreaterOrEqual(t, sw.Seconds(), d.Seconds())
}
