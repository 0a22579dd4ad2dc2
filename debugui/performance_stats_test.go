package debugui

import (
	"testing"
	"time"

	"github.com/plus3/searchtris/frame"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(3)
	assert.Equal(t, float32(0), ps.AverageFrameTime())

	ps.Record(10 * time.Millisecond)
	ps.Record(20 * time.Millisecond)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 0.001)

	ps.Record(30 * time.Millisecond)
	ps.Record(40 * time.Millisecond)
	assert.InDelta(t, 30.0, ps.AverageFrameTime(), 0.001, "oldest sample is overwritten")
}

func TestPerformanceStatsAsSystem(t *testing.T) {
	ps := NewPerformanceStats(10)
	scheduler := frame.NewScheduler()
	scheduler.Register(ps)

	scheduler.Once(0)
	scheduler.Once(16 * time.Millisecond)
	scheduler.Once(48 * time.Millisecond)

	assert.InDelta(t, 24.0, ps.AverageFrameTime(), 0.001, "the zero delta of the first frame is skipped")
}

func TestRowText(t *testing.T) {
	assert.Equal(t, "..T.Z", rowText([]uint8{0, 0, 3, 0, 7}))
	assert.Equal(t, "(refill)", upcomingText(nil))
}
