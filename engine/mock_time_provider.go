package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-tennis/constants"
)

// MockTimeProvider is a clock that only moves when a test moves it.
// Time is kept as an offset from the start instant so concurrent readers never lock.
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may be before the start instant
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceFrames moves the clock by n frame intervals, as the frame loop's ticker would
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * constants.FrameUpdateInterval)
}
